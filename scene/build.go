package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/booster-catch/parameter"
)

// Object names used by Build; renderers look labels up by these
const (
	NameGround      = "ground"
	NameLaunchPad   = "launch_pad"
	NameTower       = "tower"
	NameArmLeft     = "arm_left"
	NameArmRight    = "arm_right"
	NameTelemetry   = "telemetry"
	NameCountdown   = "countdown"
	NameRocket      = "rocket"
	NameFlame       = "rocket_flame"
	NameBooster     = "booster"
	NameTip         = "rocket_tip"
	NameEnhancedPad = "enhanced_launch_pad"
	NamePadRing     = "launch_pad_ring"
	NameStar        = "star"
	NameHeader      = "header"
	NameFinal       = "final_message"
)

var finNames = [4]string{"fin_left", "fin_right", "fin_top", "fin_bottom"}

// Rig holds the ids of every object the director animates
type Rig struct {
	Rocket   ID
	Flame    ID
	Booster  ID
	Tip      ID
	Fins     [4]ID
	ArmLeft  ID
	ArmRight ID

	EnhancedPad ID
	PadRing     ID

	Telemetry ID
	Countdown ID
	Header    ID
}

// Build declares the launch site, vehicle and decorations at their pre-launch poses
// rng places the star field; pass a seeded source for a reproducible sky
func Build(cfg parameter.Scenario, rng *rand.Rand) (*Scene, Rig) {
	s := New(parameter.SceneTitle, parameter.SceneWidth, parameter.SceneHeight, parameter.SceneCenter)
	var rig Rig

	// Launch site
	s.Add(Box(NameGround, parameter.GroundPos, parameter.GroundSize, Green))
	s.Add(Box(NameLaunchPad, parameter.PadPos, parameter.PadSize, Gray(0.3)))
	s.Add(Box(NameTower, parameter.TowerPos, parameter.TowerSize, Gray(0.5)))

	rig.ArmLeft = s.Add(Box(NameArmLeft, armPos(cfg, -cfg.ArmStart), parameter.ArmSize, Red))
	rig.ArmRight = s.Add(Box(NameArmRight, armPos(cfg, cfg.ArmStart), parameter.ArmSize, Red))

	telemetry := Label(NameTelemetry, parameter.TelemetryPos, "", parameter.TelemetryTextHeight, White)
	telemetry.Align = AlignLeft
	rig.Telemetry = s.Add(telemetry)
	rig.Countdown = s.Add(Label(NameCountdown, parameter.CountdownPos, "", parameter.CountdownTextHeight, Yellow))

	// Vehicle
	var origin mgl64.Vec3
	rig.Rocket = s.Add(Cylinder(NameRocket, origin, cfg.RocketAxis, parameter.RocketRadius, White))

	flame := Cone(NameFlame, origin, parameter.FlameAxis, parameter.FlameRadius, Orange)
	flame.Visible = false
	rig.Flame = s.Add(flame)

	booster := Cylinder(NameBooster, origin.Sub(cfg.BoosterDrop), parameter.BoosterAxis, parameter.BoosterRadius, Blue)
	booster.Visible = false
	rig.Booster = s.Add(booster)

	rig.Tip = s.Add(Cone(NameTip, origin.Add(cfg.RocketAxis), parameter.TipAxis, parameter.TipRadius, Red))
	for i, off := range cfg.FinOffsets {
		rig.Fins[i] = s.Add(Box(finNames[i], origin.Add(off), parameter.FinSizes[i], White))
	}

	// Decorations
	pad := Box(NameEnhancedPad, parameter.EnhancedPadPos, parameter.EnhancedPadSize, White)
	pad.Opacity = parameter.EnhancedPadOpacity
	rig.EnhancedPad = s.Add(pad)
	rig.PadRing = s.Add(Ring(NamePadRing, parameter.EnhancedPadPos, parameter.PadRingAxis,
		parameter.PadRingRadius, parameter.PadRingThickness, Yellow))

	s.AddLight(Light{Direction: parameter.LightDirection, Color: Gray(parameter.LightGray)})

	for range parameter.StarCount {
		star := Sphere(NameStar, randomIn(rng, parameter.StarMin, parameter.StarMax), parameter.StarRadius, White)
		star.Emissive = true
		s.Add(star)
	}

	rig.Header = s.Add(Label(NameHeader, parameter.HeaderPos, parameter.HeaderText, parameter.HeaderTextHeight, Cyan))

	return s, rig
}

func armPos(cfg parameter.Scenario, x float64) mgl64.Vec3 {
	return mgl64.Vec3{x, cfg.ArmHeight, cfg.ArmDepth}
}

func randomIn(rng *rand.Rand, lo, hi mgl64.Vec3) mgl64.Vec3 {
	var v mgl64.Vec3
	for i := range 3 {
		v[i] = lo[i] + rng.Float64()*(hi[i]-lo[i])
	}
	return v
}
