package render

import "sync"

// GenericIcon is served for unresolved icon keys
const GenericIcon = "assets/icons/generic.svg"

// Icons maps icon keys to frontend asset paths with a generic fallback
type Icons struct {
	mu     sync.RWMutex
	assets map[string]string
}

// NewIcons creates an icon resolver seeded with the shell's standard set
func NewIcons() *Icons {
	return &Icons{
		assets: map[string]string{
			"computer": "assets/icons/computer.svg",
			"folder":   "assets/icons/folder.svg",
			"drive":    "assets/icons/drive.svg",
			"broom":    "assets/icons/broom.svg",
			"gear":     "assets/icons/gear.svg",
		},
	}
}

// Set registers or replaces an icon asset
func (i *Icons) Set(key, asset string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.assets[key] = asset
}

// Resolve returns the asset path for a key, or the generic icon
func (i *Icons) Resolve(key string) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if asset, ok := i.assets[key]; ok {
		return asset
	}
	return GenericIcon
}
