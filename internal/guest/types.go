package guest

// VMState is the coarse lifecycle state of the managed virtual machine
type VMState string

const (
	VMStopped  VMState = "stopped"  // process dead
	VMStarting VMState = "starting" // process alive, guest not yet reachable
	VMRunning  VMState = "running"  // process alive and guest healthy
)

// Status reports the VM lifecycle state
type Status struct {
	State VMState `json:"status"`
	PID   *int    `json:"pid,omitempty"`
}

// Partition is one block device row reported after connecting
type Partition struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Type string `json:"type"`
}

// ConnectResult is the outcome of starting the VM and mounting its disk
type ConnectResult struct {
	PID           int         `json:"pid"`
	MountedDevice string      `json:"mounted_device"`
	Partitions    []Partition `json:"partitions"`
}

// Entry is one row of a host directory listing
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"` // "dir" or "lnk"
}

// Detection identifies which emulator owns an install directory. Status is
// "auto_selected" when exactly one version was found, "manual_select_required"
// when the user has to pick one of Versions.
type Detection struct {
	Type     string   `json:"type"`
	Versions []string `json:"versions,omitempty"`
	Selected string   `json:"selected,omitempty"`
	Status   string   `json:"status,omitempty"`
	BasePath string   `json:"base_path,omitempty"`
}

// App is one removable application found inside the guest image
type App struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size,omitempty"`
}

// DeleteResult maps each requested path to its outcome
type DeleteResult struct {
	Deleted map[string]string `json:"deleted"`
	Errors  map[string]string `json:"errors,omitempty"`
}
