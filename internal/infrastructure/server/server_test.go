package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

func newTestServer() (*Server, *monitoring.Metrics) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	return New("127.0.0.1:0", metrics, nil), metrics
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer()

	w := get(t, s.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsExposition(t *testing.T) {
	s, metrics := newTestServer()
	metrics.ObserveCommand("mkdir", types.CodeOK, time.Millisecond)

	w := get(t, s.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `vdrive_commands_total{outcome="ok",verb="mkdir"} 1`)
}

func TestMetricsJSON(t *testing.T) {
	s, metrics := newTestServer()
	metrics.ObserveTree(tree.Stats{Folders: 2, Files: 1, Bytes: 5, Depth: 1})

	w := get(t, s.Handler(), "/metrics/json")
	require.Equal(t, http.StatusOK, w.Code)

	var snap monitoring.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 2, snap.Folders)
	assert.Equal(t, 1, snap.Files)
}

func TestStartStopsWithContext(t *testing.T) {
	s, _ := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())

	done, err := s.Start(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
