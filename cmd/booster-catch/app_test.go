package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/booster-catch/audio"
	"github.com/lixenwraith/booster-catch/config"
	"github.com/lixenwraith/booster-catch/engine"
	"github.com/lixenwraith/booster-catch/metrics"
	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/scene"
)

// recordingRenderer keeps the countdown text and telemetry seen on every frame
type recordingRenderer struct {
	frames    int
	countdown []string
	final     string
	failAt    int
	closed    bool
}

func (r *recordingRenderer) Render(sc *scene.Scene) error {
	r.frames++
	if r.failAt > 0 && r.frames == r.failAt {
		return errors.New("screen gone")
	}
	if id, ok := sc.Lookup(scene.NameCountdown); ok {
		o, _ := sc.Object(id)
		if o.Visible && o.Text != "" && (len(r.countdown) == 0 || r.countdown[len(r.countdown)-1] != o.Text) {
			r.countdown = append(r.countdown, o.Text)
		}
	}
	if id, ok := sc.Lookup(scene.NameFinal); ok {
		o, _ := sc.Object(id)
		r.final = o.Text
	}
	return nil
}

func (r *recordingRenderer) Close() error {
	r.closed = true
	return nil
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.FPS = parameter.MaxTickRate
	cfg.Audio = false
	cfg.Headless = true
	cfg.CountdownSeconds = 3
	return cfg
}

func newTestApp(t *testing.T, cfg config.Config, r *recordingRenderer, rec *metrics.Recorder) *app {
	t.Helper()
	a, err := newApp(cfg, r, audio.NewSoundManager(nil), rec)
	require.NoError(t, err)
	a.countdownStep = time.Millisecond
	a.liftoffHold = time.Millisecond
	return a
}

func TestAppRunsCountdownFlightAndCatch(t *testing.T) {
	r := &recordingRenderer{}
	rec := metrics.NewRecorder()
	a := newTestApp(t, testConfig(), r, rec)

	require.NoError(t, a.run(context.Background()))

	assert.Equal(t, []string{"Launch in 3...", "Launch in 2...", "Launch in 1...", "Liftoff!"}, r.countdown)
	assert.Equal(t, parameter.FinalText, r.final)

	snap := a.sim.Snapshot()
	assert.True(t, snap.Done)
	assert.True(t, snap.Caught())

	// First frame, three countdown frames, liftoff, then one per tick
	assert.Equal(t, 1+3+1+snap.Tick, r.frames)

	latest, ok := rec.Latest()
	require.True(t, ok)
	assert.Equal(t, snap.Tick, latest.Tick)
	assert.Equal(t, float64(snap.Tick), metricsTicks(t, rec))
}

// metricsTicks fetches the tick counter through the registry
func metricsTicks(t *testing.T, rec *metrics.Recorder) float64 {
	t.Helper()
	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "booster_catch_ticks_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatal("ticks counter not registered")
	return 0
}

func TestAppSkipsCountdownWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Countdown = false
	r := &recordingRenderer{}
	a := newTestApp(t, cfg, r, nil)

	require.NoError(t, a.run(context.Background()))
	assert.Empty(t, r.countdown)
	assert.Equal(t, 1+a.sim.Snapshot().Tick, r.frames)
}

func TestAppCancelledDuringCountdown(t *testing.T) {
	r := &recordingRenderer{}
	a := newTestApp(t, testConfig(), r, nil)
	a.countdownStep = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, a.sim.Snapshot().Tick)
}

func TestAppRendererErrorStopsRun(t *testing.T) {
	cfg := testConfig()
	cfg.Countdown = false
	r := &recordingRenderer{failAt: 10}
	a := newTestApp(t, cfg, r, nil)

	err := a.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen gone")
	assert.False(t, a.sim.Snapshot().Done)
}

func TestAppHoldsFinalFrame(t *testing.T) {
	cfg := testConfig()
	cfg.Headless = false
	cfg.Hold = time.Hour
	a := newTestApp(t, cfg, &recordingRenderer{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.hold(ctx), context.Canceled)

	cfg.Headless = true
	a.cfg = cfg
	assert.NoError(t, a.hold(ctx))
}

func TestPhaseListenerCountsTransitions(t *testing.T) {
	rec := metrics.NewRecorder()
	a := newTestApp(t, testConfig(), &recordingRenderer{}, rec)

	a.onPhase(engine.PhaseChange{From: engine.PhaseAscending, To: engine.PhaseSeparated, Tick: 5})
	families, err := rec.Registry().Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "booster_catch_phase_transitions_total" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunHeadless(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"--headless", "--audio=false", "--countdown=false",
		"--fps", "1000", "--headless-every", "500",
		"--metrics-addr", "127.0.0.1:0",
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, engine.CaughtNotice)
	assert.Contains(t, out, parameter.FinalText)
	assert.Equal(t, 1, strings.Count(out, parameter.FinalText))
}

func TestRunWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booster.toml")
	var stdout, stderr bytes.Buffer

	code := run([]string{"--fps", "42", "--write-config", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fps = 42")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--color", "sepia"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "color")
}
