package parameter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera defaults, matching a canvas looking down -Z at the scene centre
const (
	// CameraFovY is the vertical field of view in radians
	CameraFovY = math.Pi / 3

	// CameraNear and CameraFar clip the view frustum
	CameraNear = 1.0
	CameraFar  = 5000.0

	// CameraMargin pads the fitted range so edge objects are not clipped
	CameraMargin = 1.08

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

var (
	// CameraUp is the world up vector
	CameraUp = mgl64.Vec3{0, 1, 0}

	// CameraForward is the viewing direction from eye to centre
	CameraForward = mgl64.Vec3{0, 0, -1}
)

// Shading
const (
	// AmbientLight is the minimum brightness of a lit, non-emissive surface
	AmbientLight = 0.45

	// CircleSegments is the polygon resolution for round shapes
	CircleSegments = 24

	// LabelEdgeOn hides labels whose facing |cos(yaw)| drops below this
	LabelEdgeOn = 0.2
)
