package types

// State represents window lifecycle states
type State string

const (
	StateNormal    State = "normal"
	StateMinimized State = "minimized"
	StateMaximized State = "maximized"
)

// Position represents window position on the desktop
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size represents window dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Geometry bundles position and size
type Geometry struct {
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Window represents a single open application surface.
//
// While a window is maximized its Geometry field is not authoritative: the
// frontend computes the viewport-filling frame at render time. SavedGeometry
// holds the frame captured immediately before maximizing and is restored
// verbatim on un-maximize.
type Window struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Icon          string                 `json:"icon"`
	Component     string                 `json:"component"` // key selecting the content renderer
	Props         map[string]interface{} `json:"props,omitempty"`
	Geometry      Geometry               `json:"geometry"`
	SavedGeometry *Geometry              `json:"saved_geometry,omitempty"`
	State         State                  `json:"state"`
	ZOrder        uint64                 `json:"z_order"`
	LaunchSeq     uint64                 `json:"launch_seq"` // stable taskbar ordering
}

// Stats contains window manager statistics
type Stats struct {
	TotalWindows     int     `json:"total_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	ActiveWindowID   *string `json:"active_window_id,omitempty"`
}
