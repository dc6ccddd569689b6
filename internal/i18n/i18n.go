// Package i18n provides the localization function used for display
// strings.
//
// The catalog is a flat key-value YAML file. Lookup is total: a missing key
// returns the caller-provided fallback, so an incomplete catalog degrades
// to readable defaults instead of blank labels.
package i18n

import (
	"os"
	"sync"

	"github.com/goccy/go-yaml"
)

// Translator resolves message keys against a catalog
type Translator struct {
	mu      sync.RWMutex
	catalog map[string]string
}

// NewTranslator creates an empty translator (everything falls back)
func NewTranslator() *Translator {
	return &Translator{catalog: make(map[string]string)}
}

// LoadFile merges a YAML catalog into the translator. A missing file is
// not an error; the shell runs untranslated.
func (t *Translator) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return t.Load(data)
}

// Load merges a YAML catalog from raw bytes
func (t *Translator) Load(data []byte) error {
	var catalog map[string]string
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for key, value := range catalog {
		t.catalog[key] = value
	}
	return nil
}

// T returns the translation for key, or fallback if absent
func (t *Translator) T(key, fallback string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if value, ok := t.catalog[key]; ok && value != "" {
		return value
	}
	return fallback
}
