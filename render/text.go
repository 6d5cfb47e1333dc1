package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/scene"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("242")).
			Padding(0, 1)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	finalStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("82")).
			Foreground(lipgloss.Color("82")).
			Padding(0, 2)
)

// Text is a headless renderer that prints labels instead of drawing the scene
// Telemetry is printed every N frames; countdown and final messages when they change
type Text struct {
	w     io.Writer
	every int

	frames        int
	lastCountdown string
	finalShown    bool
}

// NewText prints to w; every ≤ 0 uses the default interval
func NewText(w io.Writer, every int) *Text {
	if every <= 0 {
		every = parameter.HeadlessEvery
	}
	return &Text{w: w, every: every}
}

// Render prints whichever labels are due this frame
func (t *Text) Render(sc *scene.Scene) error {
	if id, ok := sc.Lookup(scene.NameCountdown); ok {
		if o, err := sc.Object(id); err == nil {
			text := ""
			if o.Visible {
				text = o.Text
			}
			if text != t.lastCountdown && text != "" {
				if _, err := fmt.Fprintln(t.w, bannerStyle.Render(text)); err != nil {
					return fmt.Errorf("write countdown: %w", err)
				}
			}
			t.lastCountdown = text
		}
	}

	telemetry := labelText(sc, scene.NameTelemetry)
	final := labelText(sc, scene.NameFinal)

	if telemetry != "" {
		t.frames++
		if t.frames%t.every == 0 || (final != "" && !t.finalShown) {
			if _, err := fmt.Fprintln(t.w, panelStyle.Render(telemetry)); err != nil {
				return fmt.Errorf("write telemetry: %w", err)
			}
		}
	}

	if final != "" && !t.finalShown {
		t.finalShown = true
		if _, err := fmt.Fprintln(t.w, finalStyle.Render(final)); err != nil {
			return fmt.Errorf("write final message: %w", err)
		}
	}
	return nil
}

// Close is a no-op; the writer belongs to the caller
func (t *Text) Close() error {
	return nil
}

func labelText(sc *scene.Scene, name string) string {
	id, ok := sc.Lookup(name)
	if !ok {
		return ""
	}
	o, err := sc.Object(id)
	if err != nil || !o.Visible {
		return ""
	}
	return o.Text
}
