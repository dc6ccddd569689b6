package guest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestStatus(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/core/status", r.URL.Path)
		pid := 4242
		json.NewEncoder(w).Encode(Status{State: VMRunning, PID: &pid})
	})

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, VMRunning, status.State)
	require.NotNil(t, status.PID)
	assert.Equal(t, 4242, *status.PID)
}

func TestConnect(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "/images/system.img", body["filepath"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":         "connected",
			"pid":            7,
			"mounted_device": "/dev/vdb1",
			"partitions": []Partition{
				{Name: "vdb1", Size: "8G", Type: "part"},
			},
		})
	})

	result, err := client.Connect(context.Background(), "/images/system.img")
	require.NoError(t, err)
	assert.Equal(t, "/dev/vdb1", result.MountedDevice)
	assert.Len(t, result.Partitions, 1)
}

func TestErrorEnvelope(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "Image file not found",
		})
	})

	_, err := client.Start(context.Background(), "/missing.img")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Image file not found")
}

func TestDelete(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"/mnt/android/app/bloat.apk"}, body["paths"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"deleted": map[string]string{"/mnt/android/app/bloat.apk": "deleted"},
		})
	})

	result, err := client.Delete(context.Background(), []string{"/mnt/android/app/bloat.apk"})
	require.NoError(t, err)
	assert.Equal(t, "deleted", result.Deleted["/mnt/android/app/bloat.apk"])
}
