package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/booster-catch/scene"
)

// monoShades maps background luminance to glyph density for ColorModeMono
var monoShades = []rune{' ', '░', '▒', '▓', '█'}

// Terminal draws the scene into a tcell screen through a perspective camera
type Terminal struct {
	screen    tcell.Screen
	mode      ColorMode
	autoscale bool

	buf *Buffer
	cam *Camera
}

// NewTerminal wraps an initialized screen; ColorModeAuto is resolved from the environment
func NewTerminal(screen tcell.Screen, mode ColorMode, autoscale bool) *Terminal {
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	return &Terminal{
		screen:    screen,
		mode:      mode,
		autoscale: autoscale,
		buf:       NewBuffer(0, 0),
	}
}

// OpenTerminal creates and initializes the process terminal screen
func OpenTerminal(mode ColorMode, autoscale bool) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return NewTerminal(screen, mode, autoscale), nil
}

// Screen exposes the underlying screen for event polling
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Mode returns the resolved color mode
func (t *Terminal) Mode() ColorMode {
	return t.mode
}

// Camera returns the camera, nil before the first frame
func (t *Terminal) Camera() *Camera {
	return t.cam
}

// Render draws one frame and shows it
func (t *Terminal) Render(sc *scene.Scene) error {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if bw, bh := t.buf.Size(); bw != w || bh != h {
		t.buf.Resize(w, h)
	}
	if t.cam == nil {
		t.cam = NewCamera(sc.Center, t.autoscale)
	}

	objs := sc.Objects()
	t.cam.Viewport(w, h)
	t.cam.Fit(objs)

	t.buf.Clear(FromColor(sc.Background))
	drawScene(t.buf, t.cam, sc, objs)
	t.flush()
	t.screen.Show()
	return nil
}

// Close restores the terminal
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

// flush copies the buffer to the screen in the configured color mode
func (t *Terminal) flush() {
	w, h := t.buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := t.buf.Get(x, y)
			r, style := t.styleCell(cell)
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (t *Terminal) styleCell(c Cell) (rune, tcell.Style) {
	r := c.Rune
	if r == 0 {
		r = ' '
	}

	switch t.mode {
	case ColorMode256:
		return r, tcell.StyleDefault.
			Foreground(tcell.PaletteColor(int(RGBTo256(c.Fg)))).
			Background(tcell.PaletteColor(int(RGBTo256(c.Bg))))
	case ColorModeMono:
		if r == ' ' {
			lum := Luminance(c.Bg)
			idx := min(int(lum*float64(len(monoShades))), len(monoShades)-1)
			return monoShades[idx], tcell.StyleDefault
		}
		return r, tcell.StyleDefault.Bold(Luminance(c.Fg) > 0.6)
	default:
		return r, tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
			Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
}
