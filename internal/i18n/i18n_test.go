package i18n

import "testing"

func TestTranslateAndFallback(t *testing.T) {
	translator := NewTranslator()
	if err := translator.Load([]byte("shortcut.this_pc: This PC\nshortcut.settings: \"\"\n")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := translator.T("shortcut.this_pc", "This PC?"); got != "This PC" {
		t.Errorf("Expected translation, got %s", got)
	}
	if got := translator.T("shortcut.missing", "Missing"); got != "Missing" {
		t.Errorf("Missing key should fall back, got %s", got)
	}
	if got := translator.T("shortcut.settings", "Settings"); got != "Settings" {
		t.Errorf("Empty translation should fall back, got %s", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	translator := NewTranslator()
	if err := translator.LoadFile("/nonexistent/locale.yaml"); err != nil {
		t.Errorf("Missing catalog should not error, got %v", err)
	}
}
