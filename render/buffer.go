package render

// Cell is one terminal character with explicit colors
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
)

// Buffer is a compositor the frame is drawn into before it is flushed to a screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear fills every cell with a blank on bg using exponential copy
func (b *Buffer) Clear(bg RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell with the specified blend mode
// A zero rune keeps the existing glyph
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	if r != 0 {
		dst.Rune = r
	}

	switch mode {
	case BlendReplace:
		dst.Fg = fg
		dst.Bg = bg
	case BlendAlpha:
		dst.Fg = Blend(dst.Fg, fg, alpha)
		dst.Bg = Blend(dst.Bg, bg, alpha)
	case BlendAdd:
		dst.Fg = Add(dst.Fg, Scale(fg, alpha))
		dst.Bg = Add(dst.Bg, Scale(bg, alpha))
	}
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background color while preserving existing rune and foreground
func (b *Buffer) SetBgOnly(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = Blend(dst.Bg, bg, alpha)
}

// WriteString draws s left to right from x,y in fg over the existing background
func (b *Buffer) WriteString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg)
		x++
	}
}
