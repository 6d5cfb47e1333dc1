package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/booster-catch/engine"
	"github.com/lixenwraith/booster-catch/parameter"
)

// Director writes simulation state into the scene once per frame
type Director struct {
	scene *Scene
	rig   Rig
	cfg   parameter.Scenario
}

// NewDirector binds a built scene to the scenario that produced it
func NewDirector(s *Scene, rig Rig, cfg parameter.Scenario) *Director {
	return &Director{scene: s, rig: rig, cfg: cfg}
}

// Scene returns the directed scene
func (d *Director) Scene() *Scene {
	return d.scene
}

// Apply updates poses, followers, telemetry and cosmetic effects from a snapshot
// Cosmetic effects are skipped on the terminating tick
func (d *Director) Apply(snap engine.Snapshot) error {
	s, r, cfg := d.scene, d.rig, d.cfg
	rocket := snap.Rocket.Pos

	errs := []error{
		s.SetPos(r.Rocket, rocket),
		s.SetVisible(r.Flame, snap.Rocket.Thrusting),
		s.SetPos(r.Flame, rocket.Sub(cfg.FlameDrop)),
		s.SetPos(r.Tip, rocket.Add(cfg.RocketAxis)),
	}
	for i, off := range cfg.FinOffsets {
		errs = append(errs, s.SetPos(r.Fins[i], rocket.Add(off)))
	}

	pad, err := s.Object(r.EnhancedPad)
	errs = append(errs, err)
	if err == nil {
		errs = append(errs, s.SetPos(r.PadRing, pad.Pos))
	}

	errs = append(errs,
		s.SetText(r.Telemetry, engine.Telemetry(snap)),
		s.SetVisible(r.Booster, snap.Booster.Visible),
		s.SetPos(r.Booster, snap.Booster.Pos),
		s.SetPos(r.ArmLeft, armPos(cfg, snap.LeftArm.Offset)),
		s.SetPos(r.ArmRight, armPos(cfg, snap.RightArm.Offset)),
	)

	if !snap.Done {
		errs = append(errs, s.Rotate(r.Header, parameter.HeaderYawStep))
		if snap.Rocket.Thrusting {
			errs = append(errs, s.SetRadius(r.Flame, FlameRadiusAt(snap.Time)))
		}
		s.Background = BackgroundAt(snap.Time)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("apply tick %d: %w", snap.Tick, err)
	}
	return nil
}

// Countdown shows "Launch in n..."
func (d *Director) Countdown(n int) error {
	if err := d.scene.SetText(d.rig.Countdown, fmt.Sprintf("Launch in %d...", n)); err != nil {
		return err
	}
	return d.scene.SetVisible(d.rig.Countdown, true)
}

// Liftoff replaces the countdown with "Liftoff!"
func (d *Director) Liftoff() error {
	if err := d.scene.SetText(d.rig.Countdown, "Liftoff!"); err != nil {
		return err
	}
	return d.scene.SetVisible(d.rig.Countdown, true)
}

// HideCountdown removes the countdown label
func (d *Director) HideCountdown() error {
	return d.scene.SetVisible(d.rig.Countdown, false)
}

// Finish adds the boxed completion message at the rocket's final altitude
func (d *Director) Finish(snap engine.Snapshot) ID {
	msg := Label(NameFinal, mgl64.Vec3{0, snap.Rocket.Pos.Y(), 0}, parameter.FinalText, parameter.FinalTextHeight, Green)
	msg.Boxed = true
	return d.scene.Add(msg)
}

// FlameRadiusAt is the flickering flame radius at time t
func FlameRadiusAt(t float64) float64 {
	return parameter.FlameRadius + parameter.FlameFlickerAmplitude*math.Sin(parameter.FlameFlickerFreq*t)
}

// BackgroundAt is the slowly pulsing sky color at time t
func BackgroundAt(t float64) Color {
	return Color{0, 0, parameter.BackgroundBlueBase + parameter.BackgroundBlueSwing*math.Sin(t/parameter.BackgroundBluePeriod)}
}
