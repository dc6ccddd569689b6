package types

// OpenRequest describes a window to open. ID is optional; when empty the
// manager assigns a fresh one. Geometry is optional and falls back to the
// manager's defaults.
type OpenRequest struct {
	ID        string                 `json:"id,omitempty"`
	Title     string                 `json:"title"`
	Icon      string                 `json:"icon,omitempty"`
	Component string                 `json:"component"`
	Props     map[string]interface{} `json:"props,omitempty"`
	Geometry  *Geometry              `json:"geometry,omitempty"`
}

// CloneProps returns a deep copy of a props payload so later mutation of
// the source (e.g. a shortcut template) cannot leak into an open window.
func CloneProps(props map[string]interface{}) map[string]interface{} {
	if props == nil {
		return nil
	}
	out := make(map[string]interface{}, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return CloneProps(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
