// Package id provides centralized ID generation for the shell.
//
// IDs are prefixed ULIDs: lexicographically sortable, unique, and readable
// in logs (win_*, sc_*). Window IDs are unique among currently open windows;
// a closed window's ID only becomes reusable after removal, which prefixed
// ULIDs guarantee trivially since fresh IDs never repeat.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// WindowID identifies an open window
type WindowID string

// ShortcutID identifies a launch shortcut
type ShortcutID string

const (
	WindowPrefix   = "win"
	ShortcutPrefix = "sc"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewWindowID generates a new window ID
func NewWindowID() WindowID {
	return WindowID(Default().GenerateWithPrefix(WindowPrefix))
}

// NewShortcutID generates a new shortcut ID
func NewShortcutID() ShortcutID {
	return ShortcutID(Default().GenerateWithPrefix(ShortcutPrefix))
}

func (id WindowID) String() string   { return string(id) }
func (id ShortcutID) String() string { return string(id) }
