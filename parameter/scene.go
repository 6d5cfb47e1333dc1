package parameter

import "github.com/go-gl/mathgl/mgl64"

// Canvas
const (
	SceneTitle  = "SpaceX Booster Catch – Enhanced Simulation"
	SceneWidth  = 1200
	SceneHeight = 600
)

// SceneCenter is the point the camera looks at
var SceneCenter = mgl64.Vec3{0, 50, 0}

// Static set pieces
var (
	GroundPos  = mgl64.Vec3{0, -1, 0}
	GroundSize = mgl64.Vec3{300, 2, 300}

	PadPos  = mgl64.Vec3{0, 0, 0}
	PadSize = mgl64.Vec3{40, 1, 40}

	TowerPos  = mgl64.Vec3{0, 60, -90}
	TowerSize = mgl64.Vec3{30, 120, 30}

	ArmSize = mgl64.Vec3{5, 40, 5}

	EnhancedPadPos  = mgl64.Vec3{0, 0, 20}
	EnhancedPadSize = mgl64.Vec3{45, 1, 45}

	PadRingAxis = mgl64.Vec3{0, 1, 0}
)

const (
	EnhancedPadOpacity = 0.5
	PadRingRadius      = 23
	PadRingThickness   = 1
)

// Vehicle shapes
const (
	RocketRadius  = 2.0
	FlameRadius   = 3.0
	BoosterRadius = 2.5
	TipRadius     = 2.5
)

var (
	FlameAxis   = mgl64.Vec3{0, -10, 0}
	BoosterAxis = mgl64.Vec3{0, 20, 0}
	TipAxis     = mgl64.Vec3{0, 5, 0}

	// FinSizes pair with Scenario.FinOffsets: left, right, top, bottom
	FinSizes = [4]mgl64.Vec3{
		{0.5, 3, 1.5},
		{0.5, 3, 1.5},
		{1.5, 3, 0.5},
		{1.5, 3, 0.5},
	}
)

// Labels
var (
	TelemetryPos = mgl64.Vec3{-140, -70, 0}
	CountdownPos = mgl64.Vec3{0, 120, 0}
	HeaderPos    = mgl64.Vec3{0, 130, 0}
)

const (
	TelemetryTextHeight = 12
	CountdownTextHeight = 20
	HeaderTextHeight    = 16
	FinalTextHeight     = 20

	HeaderText = "Welcome to the Enhanced Booster Catch Simulation"
	FinalText  = "Simulation Complete - Booster Successfully Caught!"
)

// Lighting and backdrop
var LightDirection = mgl64.Vec3{0, -1, -1}

const (
	LightGray = 0.7

	StarCount  = 20
	StarRadius = 0.5
)

var (
	StarMin = mgl64.Vec3{-150, 150, -150}
	StarMax = mgl64.Vec3{150, 300, -50}
)

// Cosmetic animation
const (
	// FlameFlickerAmplitude and FlameFlickerFreq shape radius = FlameRadius + A·sin(F·t)
	FlameFlickerAmplitude = 0.5
	FlameFlickerFreq      = 10.0

	// HeaderYawStep is the header label rotation per tick in radians
	HeaderYawStep = 0.005

	// BackgroundBlueBase and BackgroundBlueSwing shape blue = base + swing·sin(t/period)
	BackgroundBlueBase   = 0.1
	BackgroundBlueSwing  = 0.1
	BackgroundBluePeriod = 10.0
)
