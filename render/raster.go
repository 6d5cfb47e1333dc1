package render

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/scene"
)

type point struct{ x, y float64 }

type drawItem struct {
	obj   *scene.Object
	depth float64
}

// drawScene paints solids far to near, then labels in declaration order
func drawScene(buf *Buffer, cam *Camera, sc *scene.Scene, objs []scene.Object) {
	items := make([]drawItem, 0, len(objs))
	for i := range objs {
		o := &objs[i]
		if !o.Visible || o.Kind == scene.KindLabel {
			continue
		}
		// Farthest sample wins so large ground planes go down before what stands on them
		depth := math.Inf(-1)
		for _, p := range samplePoints(o) {
			if _, _, d, ok := cam.Project(p); ok {
				depth = max(depth, d)
			}
		}
		if math.IsInf(depth, -1) {
			continue
		}
		items = append(items, drawItem{obj: o, depth: depth})
	}

	slices.SortStableFunc(items, func(a, b drawItem) int {
		return cmp.Compare(b.depth, a.depth)
	})

	eye := cam.Eye()
	for _, it := range items {
		c := Scale(FromColor(it.obj.Color), shade(it.obj, eye, sc.Lights))
		switch it.obj.Kind {
		case scene.KindSphere:
			drawSphere(buf, cam, it.obj, c)
		case scene.KindRing:
			drawRing(buf, cam, it.obj, c)
		default:
			drawHull(buf, cam, it.obj, c)
		}
	}

	for i := range objs {
		if o := &objs[i]; o.Visible && o.Kind == scene.KindLabel {
			drawLabel(buf, cam, o)
		}
	}
}

// shade returns the brightness factor of an object under the scene lights
func shade(o *scene.Object, eye mgl64.Vec3, lights []scene.Light) float64 {
	if o.Emissive {
		return 1
	}
	toEye := eye.Sub(o.Pos)
	if toEye.Len() == 0 {
		return 1
	}
	toEye = toEye.Normalize()

	k := parameter.AmbientLight
	for _, l := range lights {
		if l.Direction.Len() == 0 {
			continue
		}
		lum := (l.Color.R + l.Color.G + l.Color.B) / 3
		k += lum * max(0, -l.Direction.Normalize().Dot(toEye))
	}
	return min(k, 1)
}

// samplePoints returns world points whose projected hull covers the object
func samplePoints(o *scene.Object) []mgl64.Vec3 {
	switch o.Kind {
	case scene.KindBox:
		h := o.Size.Mul(0.5)
		pts := make([]mgl64.Vec3, 0, 8)
		for _, sx := range []float64{-1, 1} {
			for _, sy := range []float64{-1, 1} {
				for _, sz := range []float64{-1, 1} {
					pts = append(pts, o.Pos.Add(mgl64.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()}))
				}
			}
		}
		return pts
	case scene.KindCylinder:
		return append(circle(o.Pos, o.Axis, o.Radius), circle(o.Pos.Add(o.Axis), o.Axis, o.Radius)...)
	case scene.KindCone:
		return append(circle(o.Pos, o.Axis, o.Radius), o.Pos.Add(o.Axis))
	case scene.KindRing:
		return circle(o.Pos, o.Axis, o.Radius+o.Thickness/2)
	case scene.KindSphere:
		r := o.Radius
		return []mgl64.Vec3{
			o.Pos.Add(mgl64.Vec3{r, 0, 0}), o.Pos.Add(mgl64.Vec3{-r, 0, 0}),
			o.Pos.Add(mgl64.Vec3{0, r, 0}), o.Pos.Add(mgl64.Vec3{0, -r, 0}),
			o.Pos.Add(mgl64.Vec3{0, 0, r}), o.Pos.Add(mgl64.Vec3{0, 0, -r}),
		}
	}
	return []mgl64.Vec3{o.Pos}
}

// circle samples a circle of radius r centred on c in the plane normal to axis
func circle(c, axis mgl64.Vec3, r float64) []mgl64.Vec3 {
	if axis.Len() == 0 {
		axis = mgl64.Vec3{0, 1, 0}
	}
	n := axis.Normalize()
	helper := mgl64.Vec3{0, 1, 0}
	if math.Abs(n.Y()) > 0.9 {
		helper = mgl64.Vec3{1, 0, 0}
	}
	u := n.Cross(helper).Normalize()
	v := n.Cross(u)

	pts := make([]mgl64.Vec3, parameter.CircleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / parameter.CircleSegments
		pts[i] = c.Add(u.Mul(r * math.Cos(a))).Add(v.Mul(r * math.Sin(a)))
	}
	return pts
}

func project(cam *Camera, world []mgl64.Vec3) []point {
	out := make([]point, 0, len(world))
	for _, p := range world {
		if x, y, _, ok := cam.Project(p); ok {
			out = append(out, point{x, y})
		}
	}
	return out
}

// convexHull returns the hull in counter-clockwise order (Andrew's monotone chain)
func convexHull(pts []point) []point {
	if len(pts) < 3 {
		return slices.Clone(pts)
	}
	sorted := slices.Clone(pts)
	slices.SortFunc(sorted, func(a, b point) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.y, b.y)
	})

	cross := func(o, a, b point) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	hull := make([]point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// insideHull reports whether p lies inside a counter-clockwise convex polygon
func insideHull(hull []point, p point) bool {
	if len(hull) < 3 {
		return false
	}
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		if (b.x-a.x)*(p.y-a.y)-(b.y-a.y)*(p.x-a.x) < 0 {
			return false
		}
	}
	return true
}

// drawHull fills the projected convex hull of a solid
// Shapes thinner than a cell still mark the cell under their centroid
func drawHull(buf *Buffer, cam *Camera, o *scene.Object, c RGB) {
	pts := project(cam, samplePoints(o))
	if len(pts) == 0 {
		return
	}
	hull := convexHull(pts)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var cx, cy float64
	for _, p := range pts {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
		cx += p.x
		cy += p.y
	}

	w, h := buf.Size()
	x0, x1 := max(int(math.Floor(minX)), 0), min(int(math.Ceil(maxX)), w-1)
	y0, y1 := max(int(math.Floor(minY)), 0), min(int(math.Ceil(maxY)), h-1)

	filled := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideHull(hull, point{float64(x) + 0.5, float64(y) + 0.5}) {
				buf.Set(x, y, ' ', c, c, BlendAlpha, o.Opacity)
				filled = true
			}
		}
	}

	if !filled {
		n := float64(len(pts))
		buf.Set(int(math.Floor(cx/n)), int(math.Floor(cy/n)), ' ', c, c, BlendAlpha, o.Opacity)
	}
}

// drawSphere fills a screen-space ellipse, or a single glyph when smaller than a cell
func drawSphere(buf *Buffer, cam *Camera, o *scene.Object, c RGB) {
	cx, cy, _, ok := cam.Project(o.Pos)
	if !ok {
		return
	}
	ex, _, _, ok := cam.Project(o.Pos.Add(cam.Right().Mul(o.Radius)))
	if !ok {
		return
	}
	rx := math.Abs(ex - cx)
	ry := rx / parameter.CellAspect

	if rx < 0.75 {
		glyph := '•'
		if o.Emissive {
			glyph = '*'
		}
		buf.SetFgOnly(int(math.Floor(cx)), int(math.Floor(cy)), glyph, c)
		return
	}

	w, h := buf.Size()
	x0, x1 := max(int(math.Floor(cx-rx)), 0), min(int(math.Ceil(cx+rx)), w-1)
	y0, y1 := max(int(math.Floor(cy-ry)), 0), min(int(math.Ceil(cy+ry)), h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				buf.Set(x, y, ' ', c, c, BlendAlpha, o.Opacity)
			}
		}
	}
}

// drawRing traces the projected circle as a closed polyline
func drawRing(buf *Buffer, cam *Camera, o *scene.Object, c RGB) {
	pts := project(cam, circle(o.Pos, o.Axis, o.Radius))
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		line(int(math.Floor(a.x)), int(math.Floor(a.y)), int(math.Floor(b.x)), int(math.Floor(b.y)), func(x, y int) {
			buf.SetBgOnly(x, y, c, o.Opacity)
		})
	}
}

// line walks cells from x0,y0 to x1,y1 inclusive (Bresenham)
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLabel writes label text anchored at its projected position
// A yawed label reads mirrored from behind and disappears edge-on
func drawLabel(buf *Buffer, cam *Camera, o *scene.Object) {
	if o.Text == "" {
		return
	}
	facing := math.Cos(o.Yaw)
	if math.Abs(facing) < parameter.LabelEdgeOn {
		return
	}
	px, py, _, ok := cam.Project(o.Pos)
	if !ok {
		return
	}

	lines := strings.Split(o.Text, "\n")
	if facing < 0 {
		for i, l := range lines {
			r := []rune(l)
			slices.Reverse(r)
			lines[i] = string(r)
		}
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	x := int(math.Floor(px))
	switch o.Align {
	case scene.AlignCenter:
		x -= width / 2
	case scene.AlignRight:
		x -= width
	}
	y := int(math.Floor(py))
	if o.Align == scene.AlignCenter {
		y -= len(lines) / 2
	}

	fg := FromColor(o.Color)
	if o.Boxed {
		drawBox(buf, x-2, y-1, width+4, len(lines)+2, fg)
	}
	for i, l := range lines {
		buf.WriteString(x, y+i, l, fg)
	}
}

// drawBox outlines a rectangle with box-drawing glyphs
func drawBox(buf *Buffer, x, y, w, h int, fg RGB) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		buf.SetFgOnly(i, y, '─', fg)
		buf.SetFgOnly(i, bottom, '─', fg)
	}
	for j := y + 1; j < bottom; j++ {
		buf.SetFgOnly(x, j, '│', fg)
		buf.SetFgOnly(right, j, '│', fg)
		for i := x + 1; i < right; i++ {
			buf.SetFgOnly(i, j, ' ', fg)
		}
	}
	buf.SetFgOnly(x, y, '┌', fg)
	buf.SetFgOnly(right, y, '┐', fg)
	buf.SetFgOnly(x, bottom, '└', fg)
	buf.SetFgOnly(right, bottom, '┘', fg)
}
