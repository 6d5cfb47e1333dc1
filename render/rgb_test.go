package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/booster-catch/scene"
)

func TestBlendEndpoints(t *testing.T) {
	dst := RGB{10, 20, 30}
	src := RGB{200, 100, 0}

	assert.Equal(t, dst, Blend(dst, src, 0))
	assert.Equal(t, src, Blend(dst, src, 1))
	assert.Equal(t, RGB{105, 60, 15}, Blend(dst, src, 0.5))
}

func TestAddClamps(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 30}, Add(RGB{200, 250, 10}, RGB{100, 10, 20}))
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, FromColor(scene.White))
	assert.Equal(t, RGB{77, 77, 77}, FromColor(scene.Gray(0.3)))
	assert.Equal(t, RGB{255, 0, 0}, FromColor(scene.Color{R: 2, G: -1}))
}

func TestRGBTo256(t *testing.T) {
	cases := []struct {
		in   RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RGBTo256(c.in), "%v", c.in)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"":          ColorModeAuto,
		"auto":      ColorModeAuto,
		"TrueColor": ColorModeTrueColor,
		"256":       ColorMode256,
		"mono":      ColorModeMono,
	} {
		got, ok := ParseColorMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseColorMode("16")
	assert.False(t, ok)
	assert.Equal(t, "truecolor", ColorModeTrueColor.String())
}

func TestBufferSetModes(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Clear(RGB{0, 0, 100})

	b.Set(1, 1, 'x', RGB{255, 255, 255}, RGB{200, 0, 0}, BlendReplace, 1)
	assert.Equal(t, Cell{Rune: 'x', Fg: RGB{255, 255, 255}, Bg: RGB{200, 0, 0}}, b.Get(1, 1))

	b.Set(0, 0, 0, RGB{}, RGB{0, 0, 200}, BlendAlpha, 0.5)
	assert.Equal(t, RGB{0, 0, 150}, b.Get(0, 0).Bg)
	assert.Equal(t, ' ', b.Get(0, 0).Rune)

	b.SetBgOnly(2, 0, RGB{255, 0, 0}, 1)
	assert.Equal(t, RGB{255, 0, 0}, b.Get(2, 0).Bg)

	// Out of bounds writes are ignored
	b.Set(9, 9, 'y', RGB{}, RGB{}, BlendReplace, 1)
	assert.Equal(t, Cell{}, b.Get(9, 9))

	b.Resize(2, 2)
	w, h := b.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, RGBBlack, b.Get(1, 1).Bg)
}
