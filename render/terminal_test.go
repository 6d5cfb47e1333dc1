package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/booster-catch/engine"
	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/scene"
)

func newSimTerminal(t *testing.T, w, h int, mode ColorMode) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	term := NewTerminal(screen, mode, false)
	t.Cleanup(func() { term.Close() })
	return term, screen
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func steppedScene(t *testing.T) (*scene.Scene, engine.Snapshot) {
	t.Helper()
	cfg := parameter.DefaultScenario()
	sc, rig := scene.Build(cfg, rand.New(rand.NewPCG(3, 4)))
	sim, err := engine.NewSimulation(cfg)
	require.NoError(t, err)
	sim.Step()
	snap := sim.Snapshot()
	require.NoError(t, scene.NewDirector(sc, rig, cfg).Apply(snap))
	return sc, snap
}

func TestTerminalDrawsTelemetryAndBackground(t *testing.T) {
	term, screen := newSimTerminal(t, 120, 40, ColorModeTrueColor)
	sc, snap := steppedScene(t)

	require.NoError(t, term.Render(sc))

	text := screenText(screen)
	assert.Contains(t, text, "Time: 0.01 s")
	assert.Contains(t, text, "Fuel: 100.0%")
	assert.Contains(t, text, parameter.HeaderText)

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	want := FromColor(scene.BackgroundAt(snap.Time))
	assert.Equal(t, int32(0), r)
	assert.Equal(t, int32(0), g)
	assert.Equal(t, int32(want.B), b)
}

func TestTerminalDrawsGround(t *testing.T) {
	term, screen := newSimTerminal(t, 120, 40, ColorModeTrueColor)
	sc, _ := steppedScene(t)
	require.NoError(t, term.Render(sc))

	// A point on the ground clear of the pads and tower
	x, y, _, ok := term.Camera().Project(mgl64.Vec3{120, 0, 120})
	require.True(t, ok)
	_, _, style, _ := screen.GetContent(int(x), int(y))
	_, bg, _ := style.Decompose()
	r, g, b := bg.RGB()
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)
}

func TestTerminalFollowsResize(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 24, ColorModeTrueColor)
	sc, _ := steppedScene(t)
	require.NoError(t, term.Render(sc))

	screen.SetSize(100, 30)
	require.NoError(t, term.Render(sc))
	w, h := term.buf.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
}

func TestTerminalMonoUsesShadeGlyphs(t *testing.T) {
	term, screen := newSimTerminal(t, 120, 40, ColorModeMono)
	sc, _ := steppedScene(t)
	require.NoError(t, term.Render(sc))

	text := screenText(screen)
	assert.Contains(t, text, "Time: 0.01 s")
	assert.True(t, strings.ContainsAny(text, "░▒▓█"))
	assert.Equal(t, ColorModeMono, term.Mode())
}

func TestTerminal256UsesPalette(t *testing.T) {
	term, screen := newSimTerminal(t, 120, 40, ColorMode256)
	sc, _ := steppedScene(t)
	require.NoError(t, term.Render(sc))

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	assert.False(t, bg.IsRGB())
}
