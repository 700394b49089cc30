// internal/web/web_test.go
package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/printer-keepalive/internal/status"
)

type fakeSource struct {
	snap status.Snapshot
}

func (f *fakeSource) Status() status.Snapshot { return f.snap }

func healthySource() *fakeSource {
	return &fakeSource{snap: status.Snapshot{
		Running:     true,
		Address:     "printer.local",
		Port:        9100,
		LastSuccess: time.Now(),
		MaxFailures: 10,
	}}
}

func TestStatusEndpoint(t *testing.T) {
	server := New(healthySource())

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	require.Equal(t, true, m["running"])
	require.Equal(t, "printer.local:9100", m["target"])
	require.Equal(t, string(status.HealthOK), m["health"])
}

func TestHealthz_OK(t *testing.T) {
	server := New(healthySource())

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz_Degraded(t *testing.T) {
	src := healthySource()
	src.snap.ConsecutiveFailures = 2

	server := New(src)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// degraded still serves 200; the loop is fighting, not dead
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz_Down(t *testing.T) {
	src := healthySource()
	src.snap.ConsecutiveFailures = 10

	server := New(src)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz_Stopped(t *testing.T) {
	src := healthySource()
	src.snap.Running = false

	server := New(src)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
