package id

import (
	"strings"
	"testing"
)

func TestNewWindowID(t *testing.T) {
	a := NewWindowID()
	b := NewWindowID()

	if !strings.HasPrefix(a.String(), WindowPrefix+"_") {
		t.Errorf("Expected win_ prefix, got %s", a)
	}

	if a == b {
		t.Error("Generated IDs should be unique")
	}
}

func TestNewShortcutID(t *testing.T) {
	id := NewShortcutID()
	if !strings.HasPrefix(id.String(), ShortcutPrefix+"_") {
		t.Errorf("Expected sc_ prefix, got %s", id)
	}
}
