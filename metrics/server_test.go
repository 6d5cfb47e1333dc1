package metrics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/booster-catch/engine"
)

func TestTelemetryUnavailableBeforeFirstTick(t *testing.T) {
	router := NewRouter(NewRecorder())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/telemetry", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestTelemetryServesLatestSnapshot(t *testing.T) {
	rec := NewRecorder()
	sim := newTestSimulation(t)
	for i := 0; i < 25; i++ {
		sim.Step()
		rec.Observe(sim.Snapshot())
	}

	rr := httptest.NewRecorder()
	NewRouter(rec).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/telemetry", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var view TelemetryView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	snap := sim.Snapshot()
	assert.Equal(t, 25, view.Tick)
	assert.Equal(t, "Ascending", view.Phase)
	assert.InDelta(t, snap.Rocket.Pos.Y(), view.Altitude, 1e-12)
	assert.Equal(t, engine.Telemetry(snap), view.Text)
	assert.False(t, view.BoosterVisible)
}

func TestMetricsAndHealthRoutes(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(engine.Snapshot{Tick: 1, Phase: engine.PhaseAscending})
	router := NewRouter(rec)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "booster_catch_ticks_total 1")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", strings.TrimSpace(rr.Body.String()))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestListenAndShutdown(t *testing.T) {
	rec := NewRecorder()
	srv, err := Listen("127.0.0.1:0", rec)
	require.NoError(t, err)

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", strings.TrimSpace(string(body)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
}

func TestListenRejectsBadAddress(t *testing.T) {
	_, err := Listen("not-an-address", NewRecorder())
	assert.Error(t, err)
}
