package render

import (
	"os"
	"strings"

	"github.com/lixenwraith/booster-catch/scene"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// FromColor converts a scene color to 8-bit channels
func FromColor(c scene.Color) RGB {
	return RGB{clamp(c.R * 255), clamp(c.G * 255), clamp(c.B * 255)}
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
// If alpha is 1.0 or 0.0, returns early to save math
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return dst
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func Add(dst, src RGB) RGB {
	return RGB{
		R: uint8(min(int(dst.R)+int(src.R), 255)),
		G: uint8(min(int(dst.G)+int(src.G), 255)),
		B: uint8(min(int(dst.B)+int(src.B), 255)),
	}
}

// Scale multiplies every channel by k
func Scale(c RGB, k float64) RGB {
	return RGB{clamp(float64(c.R) * k), clamp(float64(c.G) * k), clamp(float64(c.B) * k)}
}

// Luminance returns perceived brightness in [0,1]
func Luminance(c RGB) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
}

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // Detect from environment
	ColorModeTrueColor                  // 24-bit RGB
	ColorMode256                        // xterm-256 palette
	ColorModeMono                       // Shade glyphs, no color
)

// ParseColorMode maps a flag value to a mode
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorModeAuto, true
	case "truecolor", "24bit":
		return ColorModeTrueColor, true
	case "256":
		return ColorMode256, true
	case "mono", "none":
		return ColorModeMono, true
	}
	return ColorModeAuto, false
}

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	case ColorModeMono:
		return "mono"
	}
	return "auto"
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	for _, env := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	// 3. Check TERM for known true color terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") || strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	if term == "dumb" || term == "" {
		return ColorModeMono
	}

	// 4. Default to 256-color
	return ColorMode256
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index
// Near-gray colors are matched against the 24-step grayscale ramp as well as the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	gray := (r + g + b) / 3
	maxDiff := max(abs(r-gray), abs(g-gray), abs(b-gray))

	cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cube := 16 + 36*cr + 6*cg + cb

	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := abs(r-grayLevel) + abs(g-grayLevel) + abs(b-grayLevel)
	cubeDist := abs(r-int(cubeValues[cr])) + abs(g-int(cubeValues[cg])) + abs(b-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}
