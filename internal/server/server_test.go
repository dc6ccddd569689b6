package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobloat/shell/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Guest.Enabled = false
	cfg.RateLimit.Enabled = false
	cfg.Logging.Level = "error"
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(testConfig())
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	w, resp := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
}

func TestWindowLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	w, resp := do(t, srv, http.MethodPost, "/windows", map[string]interface{}{
		"title":     "Notes",
		"component": "Notes",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	win := resp["window"].(map[string]interface{})
	id := win["id"].(string)
	require.NotEmpty(t, id)

	w, resp = do(t, srv, http.MethodGet, "/windows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["windows"], 1)
	assert.Equal(t, id, resp["active_id"])

	w, _ = do(t, srv, http.MethodPost, "/windows/"+id+"/minimize", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Nil(t, resp["active_id"])

	w, _ = do(t, srv, http.MethodPost, "/windows/"+id+"/focus", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Equal(t, id, resp["active_id"])

	w, _ = do(t, srv, http.MethodDelete, "/windows/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Empty(t, resp["windows"])
}

func TestUnknownWindowIsNoOp(t *testing.T) {
	srv := newTestServer(t)

	w, resp := do(t, srv, http.MethodPost, "/windows/nope/focus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["changed"])
}

func TestMinimizeAllOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodPost, "/windows", map[string]interface{}{"title": "A", "component": "A"})
	do(t, srv, http.MethodPost, "/windows", map[string]interface{}{"title": "B", "component": "B"})

	w, _ := do(t, srv, http.MethodPost, "/shell/minimize-all", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, resp := do(t, srv, http.MethodGet, "/windows", nil)
	assert.Nil(t, resp["active_id"])
	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["minimized_windows"])
}

func TestTaskbarClickTogglesActive(t *testing.T) {
	srv := newTestServer(t)

	_, resp := do(t, srv, http.MethodPost, "/windows", map[string]interface{}{
		"title":     "Files",
		"component": "FileExplorer",
	})
	id := resp["window"].(map[string]interface{})["id"].(string)

	// Active window: click minimizes
	do(t, srv, http.MethodPost, "/taskbar/"+id+"/click", nil)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Nil(t, resp["active_id"])

	// Minimized window: click restores focus
	do(t, srv, http.MethodPost, "/taskbar/"+id+"/click", nil)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Equal(t, id, resp["active_id"])
}

func TestDefaultShortcutsSeeded(t *testing.T) {
	srv := newTestServer(t)

	_, resp := do(t, srv, http.MethodGet, "/shortcuts", nil)
	shortcuts := resp["shortcuts"].([]interface{})
	require.Len(t, shortcuts, 4)

	ids := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		ids = append(ids, sc.(map[string]interface{})["id"].(string))
	}
	assert.Equal(t, []string{"this-pc", "file-explorer", "app-cleaner", "settings"}, ids)
}

func TestConfiguredDefaultGeometry(t *testing.T) {
	cfg := testConfig()
	cfg.Shell.WindowX = 40
	cfg.Shell.WindowY = 30
	cfg.Shell.WindowWidth = 1024
	cfg.Shell.WindowHeight = 600

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	_, resp := do(t, srv, http.MethodPost, "/windows", map[string]interface{}{
		"title":     "Notes",
		"component": "Notes",
	})
	geo := resp["window"].(map[string]interface{})["geometry"].(map[string]interface{})
	assert.Equal(t, float64(40), geo["position"].(map[string]interface{})["x"])
	assert.Equal(t, float64(1024), geo["size"].(map[string]interface{})["width"])
}

func TestSeedFileEntriesFollowBuiltins(t *testing.T) {
	seed := `shortcuts:
  - id: recycle-bin
    label: shortcut.recycle_bin
    icon: trash
    component: FileExplorer
`
	path := filepath.Join(t.TempDir(), "shortcuts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	cfg := testConfig()
	cfg.Shell.SeedPath = path

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	_, resp := do(t, srv, http.MethodGet, "/shortcuts", nil)
	shortcuts := resp["shortcuts"].([]interface{})
	require.Len(t, shortcuts, 5)
	assert.Equal(t, "this-pc", shortcuts[0].(map[string]interface{})["id"])
	assert.Equal(t, "recycle-bin", shortcuts[4].(map[string]interface{})["id"])
}

func TestStartMenuFilterAndLaunch(t *testing.T) {
	srv := newTestServer(t)

	_, resp := do(t, srv, http.MethodGet, "/startmenu?q=clean", nil)
	entries := resp["entries"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "app-cleaner", entries[0].(map[string]interface{})["id"])

	w, resp := do(t, srv, http.MethodPost, "/startmenu/app-cleaner/launch", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "app-cleaner", resp["window"].(map[string]interface{})["id"])

	// Launching again refocuses the same window instead of duplicating it
	do(t, srv, http.MethodPost, "/startmenu/app-cleaner/launch", nil)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Len(t, resp["windows"], 1)

	w, _ = do(t, srv, http.MethodPost, "/startmenu/unknown/launch", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDesktopIcons(t *testing.T) {
	srv := newTestServer(t)

	_, resp := do(t, srv, http.MethodGet, "/desktop", nil)
	icons := resp["icons"].([]interface{})
	assert.Len(t, icons, 4)

	w, _ := do(t, srv, http.MethodPost, "/desktop/this-pc/open", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, resp = do(t, srv, http.MethodGet, "/windows", nil)
	assert.Equal(t, "this-pc", resp["active_id"])
}

func TestWindowViewResolution(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodPost, "/startmenu/settings/launch", nil)
	_, resp := do(t, srv, http.MethodGet, "/windows/settings/view", nil)
	view := resp["view"].(map[string]interface{})
	assert.Equal(t, "Settings", view["kind"])

	// Unregistered component degrades to the fallback placeholder
	_, resp = do(t, srv, http.MethodPost, "/windows", map[string]interface{}{
		"id":        "mystery",
		"title":     "Mystery",
		"component": "Holodeck",
	})
	_, resp = do(t, srv, http.MethodGet, "/windows/mystery/view", nil)
	view = resp["view"].(map[string]interface{})
	assert.Equal(t, true, view["fallback"])

	w, _ := do(t, srv, http.MethodGet, "/windows/ghost/view", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuestDisabledReturns503(t *testing.T) {
	srv := newTestServer(t)

	w, resp := do(t, srv, http.MethodGet, "/guest/status", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, resp["success"])
}
