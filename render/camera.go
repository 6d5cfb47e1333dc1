package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/scene"
)

// Camera is a perspective camera looking along a fixed direction at the scene centre
// With Autoscale set it backs away whenever visible geometry leaves the view; it never moves in
type Camera struct {
	Center    mgl64.Vec3
	Autoscale bool

	distance float64
	width    int
	height   int
	aspect   float64
	view     mgl64.Mat4
	proj     mgl64.Mat4
}

// NewCamera creates an unfitted camera aimed at center
func NewCamera(center mgl64.Vec3, autoscale bool) *Camera {
	return &Camera{Center: center, Autoscale: autoscale}
}

// Eye returns the camera position
func (c *Camera) Eye() mgl64.Vec3 {
	return c.Center.Sub(parameter.CameraForward.Mul(c.distance))
}

// Distance returns the eye to centre distance; zero before the first Fit
func (c *Camera) Distance() float64 {
	return c.distance
}

// Viewport sets the target size in cells
func (c *Camera) Viewport(width, height int) {
	c.width, c.height = width, height
	// Cells are taller than wide, so the square-unit height is rows × aspect
	c.aspect = float64(width) / (float64(max(height, 1)) * parameter.CellAspect)
}

// Fit grows the viewing distance so every visible non-label object fits
// The first call always sets the distance
func (c *Camera) Fit(objs []scene.Object) {
	radius := 0.0
	for i := range objs {
		o := &objs[i]
		if !o.Visible || o.Kind == scene.KindLabel {
			continue
		}
		for _, p := range samplePoints(o) {
			radius = max(radius, p.Sub(c.Center).Len())
		}
	}

	halfY := parameter.CameraFovY / 2
	halfX := math.Atan(math.Tan(halfY) * c.aspect)
	need := radius * parameter.CameraMargin / math.Sin(min(halfX, halfY))

	if c.distance == 0 || (c.Autoscale && need > c.distance) {
		c.distance = max(need, parameter.CameraNear*2)
	}
	c.update()
}

func (c *Camera) update() {
	far := max(parameter.CameraFar, c.distance*4)
	c.view = mgl64.LookAtV(c.Eye(), c.Center, parameter.CameraUp)
	c.proj = mgl64.Perspective(parameter.CameraFovY, c.aspect, parameter.CameraNear, far)
}

// Project maps a world point to fractional cell coordinates
// depth is the distance along the view direction; ok is false behind the near plane
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.proj.Mul4x1(c.view.Mul4x1(p.Vec4(1)))
	w := clip.W()
	if w < parameter.CameraNear {
		return 0, 0, w, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	x = (ndc.X() + 1) / 2 * float64(c.width)
	y = (1 - ndc.Y()) / 2 * float64(c.height)
	return x, y, w, true
}

// Right returns the screen-right direction in world space
func (c *Camera) Right() mgl64.Vec3 {
	return parameter.CameraForward.Cross(parameter.CameraUp).Normalize()
}
