package types

// Shortcut is a reusable launch template for a window (desktop or start
// menu icon). Removing a shortcut never affects windows already spawned
// from it; its Props template is copied at open time.
type Shortcut struct {
	ID        string                 `json:"id"`
	Label     string                 `json:"label"`
	Icon      string                 `json:"icon"`
	Component string                 `json:"component"`
	Geometry  Geometry               `json:"geometry"`
	Props     map[string]interface{} `json:"props,omitempty"`
}
