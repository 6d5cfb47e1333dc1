package parameter

import "github.com/go-gl/mathgl/mgl64"

// Scenario is the fixed flight profile of the demo
// Values are copied into each simulation; there is no mutation path after construction
type Scenario struct {
	// Integration
	Dt      float64 // Seconds per tick
	Gravity float64 // m/s^2, applied downward

	// Rocket
	Thrust          float64
	Mass            float64
	InitialFuel     float64 // Percent
	FuelBurnPerTick float64 // Percent consumed per thrusting tick

	// Separation
	SeparationAltitude    float64
	BoosterDrop           mgl64.Vec3 // Booster spawn = rocket position - BoosterDrop
	BoosterVelocityFactor float64

	// Descent
	LandingZoneAltitude float64
	RetroBurnFloor      float64 // Retro-burn only while vertical velocity is below this
	RetroBurnStep       float64 // Vertical velocity added per retro-burn tick

	// Catch tower
	ArmStart   float64 // Initial |x| of each arm
	ArmHeight  float64
	ArmDepth   float64
	ArmStep    float64 // Horizontal travel per tick while catching
	ArmClosure float64 // Arms are closed once both |x| fall below this
	CatchPoint mgl64.Vec3

	// End of run
	EndAltitude float64

	// Follower geometry
	RocketAxis mgl64.Vec3
	FlameDrop  mgl64.Vec3
	FinOffsets [4]mgl64.Vec3 // left, right, top, bottom
}

// DefaultScenario returns the launch-separate-catch profile
func DefaultScenario() Scenario {
	return Scenario{
		Dt:      0.01,
		Gravity: 9.81,

		Thrust:          5000.0,
		Mass:            100.0,
		InitialFuel:     100.0,
		FuelBurnPerTick: 0.05,

		SeparationAltitude:    100,
		BoosterDrop:           mgl64.Vec3{0, 18, 0},
		BoosterVelocityFactor: 0.8,

		LandingZoneAltitude: 60,
		RetroBurnFloor:      -2,
		RetroBurnStep:       0.2,

		ArmStart:   25,
		ArmHeight:  110,
		ArmDepth:   -90,
		ArmStep:    0.3,
		ArmClosure: 2,
		CatchPoint: mgl64.Vec3{0, 60, -90},

		EndAltitude: 300,

		RocketAxis: mgl64.Vec3{0, 30, 0},
		FlameDrop:  mgl64.Vec3{0, 5, 0},
		FinOffsets: [4]mgl64.Vec3{
			{-2.5, 10, 0},
			{2.5, 10, 0},
			{0, 10, -2.5},
			{0, 10, 2.5},
		},
	}
}

// NetThrustAcceleration is the upward acceleration while fuel remains
func (s Scenario) NetThrustAcceleration() float64 {
	return s.Thrust/s.Mass - s.Gravity
}

// BurnTicks is the number of thrusting ticks a full tank provides
func (s Scenario) BurnTicks() int {
	n := 0
	for s.InitialFuel-float64(n)*s.FuelBurnPerTick > 0 {
		n++
	}
	return n
}
