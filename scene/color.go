package scene

// Color is a linear RGB triple with components in [0,1]
type Color struct {
	R, G, B float64
}

var (
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Yellow = Color{1, 1, 0}
	Cyan   = Color{0, 1, 1}
	Orange = Color{1, 0.6, 0}
)

// Gray returns a neutral color of the given luminance
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Scale multiplies each component by k, clamping to [0,1]
func (c Color) Scale(k float64) Color {
	return Color{clamp01(c.R * k), clamp01(c.G * k), clamp01(c.B * k)}
}

// Lerp interpolates from c toward o by t
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
