package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownObject is returned for ids the scene never issued
var ErrUnknownObject = errors.New("unknown scene object")

// Light is a directional light
type Light struct {
	Direction mgl64.Vec3
	Color     Color
}

// Scene is an ordered collection of primitives plus canvas settings
// Not safe for concurrent use; the run loop owns it
type Scene struct {
	Title      string
	Width      int
	Height     int
	Center     mgl64.Vec3
	Background Color
	Lights     []Light

	objects []Object
	byName  map[string]ID
}

// New creates an empty scene with a black background
func New(title string, width, height int, center mgl64.Vec3) *Scene {
	return &Scene{
		Title:      title,
		Width:      width,
		Height:     height,
		Center:     center,
		Background: Black,
		byName:     make(map[string]ID),
	}
}

// Add appends an object and returns its id
// A later object with the same name shadows the earlier one in Lookup
func (s *Scene) Add(o Object) ID {
	id := ID(len(s.objects))
	o.ID = id
	s.objects = append(s.objects, o)
	if o.Name != "" {
		s.byName[o.Name] = id
	}
	return id
}

// AddLight registers a directional light
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// Object returns a copy of the object
func (s *Scene) Object(id ID) (Object, error) {
	o, err := s.get(id)
	if err != nil {
		return Object{}, err
	}
	return *o, nil
}

// Lookup resolves an object name
func (s *Scene) Lookup(name string) (ID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Objects returns a copy of all objects in insertion order
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Scene) get(id ID) (*Object, error) {
	if id < 0 || int(id) >= len(s.objects) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObject, id)
	}
	return &s.objects[id], nil
}

// SetPos moves an object
func (s *Scene) SetPos(id ID, pos mgl64.Vec3) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Pos = pos
	return nil
}

// SetVisible shows or hides an object
func (s *Scene) SetVisible(id ID, visible bool) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Visible = visible
	return nil
}

// SetColor recolors an object
func (s *Scene) SetColor(id ID, c Color) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Color = c
	return nil
}

// SetRadius resizes a round object
func (s *Scene) SetRadius(id ID, r float64) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Radius = r
	return nil
}

// SetText replaces a label's text
func (s *Scene) SetText(id ID, text string) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Text = text
	return nil
}

// Rotate turns an object about the vertical axis through its own position
// Yaw is kept in [0, 2π)
func (s *Scene) Rotate(id ID, angle float64) error {
	o, err := s.get(id)
	if err != nil {
		return err
	}
	o.Yaw = math.Mod(o.Yaw+angle, 2*math.Pi)
	if o.Yaw < 0 {
		o.Yaw += 2 * math.Pi
	}
	return nil
}
