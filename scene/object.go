package scene

import "github.com/go-gl/mathgl/mgl64"

// ID identifies an object within its scene
type ID int

// Kind is the primitive shape of an object
type Kind uint8

const (
	KindBox Kind = iota
	KindCylinder
	KindCone
	KindRing
	KindSphere
	KindLabel
)

var kindNames = [...]string{
	KindBox:      "box",
	KindCylinder: "cylinder",
	KindCone:     "cone",
	KindRing:     "ring",
	KindSphere:   "sphere",
	KindLabel:    "label",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Align is the horizontal anchoring of label text
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Object is one primitive in the scene
// Pos is the centre for boxes, spheres, rings and labels, and the base for cylinders and cones
type Object struct {
	ID   ID
	Name string
	Kind Kind

	Pos  mgl64.Vec3
	Axis mgl64.Vec3 // Cylinder, cone and ring orientation; length is the shape's height
	Size mgl64.Vec3 // Box extents

	Radius    float64
	Thickness float64 // Ring tube

	Color    Color
	Opacity  float64 // 1 is opaque
	Emissive bool
	Visible  bool

	Text       string
	TextHeight int
	Align      Align
	Boxed      bool

	Yaw float64 // Accumulated rotation about the vertical axis, radians
}

// Box returns a visible opaque box
func Box(name string, pos, size mgl64.Vec3, c Color) Object {
	return Object{Name: name, Kind: KindBox, Pos: pos, Size: size, Color: c, Opacity: 1, Visible: true}
}

// Cylinder returns a visible opaque cylinder
func Cylinder(name string, pos, axis mgl64.Vec3, radius float64, c Color) Object {
	return Object{Name: name, Kind: KindCylinder, Pos: pos, Axis: axis, Radius: radius, Color: c, Opacity: 1, Visible: true}
}

// Cone returns a visible opaque cone with its base at pos
func Cone(name string, pos, axis mgl64.Vec3, radius float64, c Color) Object {
	return Object{Name: name, Kind: KindCone, Pos: pos, Axis: axis, Radius: radius, Color: c, Opacity: 1, Visible: true}
}

// Ring returns a visible ring whose normal is axis
func Ring(name string, pos, axis mgl64.Vec3, radius, thickness float64, c Color) Object {
	return Object{Name: name, Kind: KindRing, Pos: pos, Axis: axis, Radius: radius, Thickness: thickness, Color: c, Opacity: 1, Visible: true}
}

// Sphere returns a visible sphere
func Sphere(name string, pos mgl64.Vec3, radius float64, c Color) Object {
	return Object{Name: name, Kind: KindSphere, Pos: pos, Radius: radius, Color: c, Opacity: 1, Visible: true}
}

// Label returns a visible text label
func Label(name string, pos mgl64.Vec3, text string, height int, c Color) Object {
	return Object{Name: name, Kind: KindLabel, Pos: pos, Text: text, TextHeight: height, Color: c, Opacity: 1, Visible: true}
}
