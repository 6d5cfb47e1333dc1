package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := New("t", 10, 10, mgl64.Vec3{})
	a := s.Add(Box("a", mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Red))
	b := s.Add(Sphere("b", mgl64.Vec3{1, 2, 3}, 1, Blue))

	assert.Equal(t, ID(0), a)
	assert.Equal(t, ID(1), b)
	assert.Equal(t, 2, s.Len())

	obj, err := s.Object(b)
	require.NoError(t, err)
	assert.Equal(t, b, obj.ID)
	assert.Equal(t, KindSphere, obj.Kind)

	id, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, a, id)
}

func TestSettersUpdateObject(t *testing.T) {
	s := New("t", 10, 10, mgl64.Vec3{})
	id := s.Add(Label("l", mgl64.Vec3{}, "", 12, White))

	require.NoError(t, s.SetPos(id, mgl64.Vec3{1, 2, 3}))
	require.NoError(t, s.SetVisible(id, false))
	require.NoError(t, s.SetColor(id, Yellow))
	require.NoError(t, s.SetRadius(id, 4))
	require.NoError(t, s.SetText(id, "hello"))

	obj, err := s.Object(id)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, obj.Pos)
	assert.False(t, obj.Visible)
	assert.Equal(t, Yellow, obj.Color)
	assert.Equal(t, 4.0, obj.Radius)
	assert.Equal(t, "hello", obj.Text)
}

func TestUnknownObject(t *testing.T) {
	s := New("t", 10, 10, mgl64.Vec3{})
	s.Add(Box("a", mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Red))

	for _, id := range []ID{-1, 1, 99} {
		assert.ErrorIs(t, s.SetPos(id, mgl64.Vec3{}), ErrUnknownObject)
		assert.ErrorIs(t, s.SetVisible(id, true), ErrUnknownObject)
		assert.ErrorIs(t, s.SetColor(id, Red), ErrUnknownObject)
		assert.ErrorIs(t, s.SetRadius(id, 1), ErrUnknownObject)
		assert.ErrorIs(t, s.SetText(id, ""), ErrUnknownObject)
		assert.ErrorIs(t, s.Rotate(id, 1), ErrUnknownObject)
		_, err := s.Object(id)
		assert.ErrorIs(t, err, ErrUnknownObject)
	}
}

func TestRotateWrapsYaw(t *testing.T) {
	s := New("t", 10, 10, mgl64.Vec3{})
	id := s.Add(Label("h", mgl64.Vec3{}, "x", 12, Cyan))

	require.NoError(t, s.Rotate(id, 3*math.Pi))
	obj, _ := s.Object(id)
	assert.InDelta(t, math.Pi, obj.Yaw, 1e-9)

	require.NoError(t, s.Rotate(id, -2*math.Pi))
	obj, _ = s.Object(id)
	assert.InDelta(t, math.Pi, obj.Yaw, 1e-9)

	require.NoError(t, s.Rotate(id, -1.5*math.Pi))
	obj, _ = s.Object(id)
	assert.InDelta(t, 1.5*math.Pi, obj.Yaw, 1e-9)
}

func TestObjectsReturnsCopy(t *testing.T) {
	s := New("t", 10, 10, mgl64.Vec3{})
	id := s.Add(Box("a", mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, Red))

	objs := s.Objects()
	objs[0].Pos = mgl64.Vec3{9, 9, 9}

	obj, _ := s.Object(id)
	assert.Equal(t, mgl64.Vec3{}, obj.Pos)
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, Color{0.3, 0.3, 0.3}, Gray(0.3))
	assert.Equal(t, Color{1, 0.5, 0}, Color{1, 0.25, 0}.Scale(2))
	assert.Equal(t, Color{0.5, 0.5, 0.5}, Black.Lerp(White, 0.5))
	assert.Equal(t, "cone", KindCone.String())
}
