package engine

import "github.com/go-gl/mathgl/mgl64"

// Step advances the simulation by one tick and returns the termination signal
// Calling Step after termination keeps integrating; the signal stays true while the condition holds
func (s *Simulation) Step() bool {
	s.phases.Advance()
	s.state.Tick++
	s.state.Time = float64(s.state.Tick) * s.cfg.Dt

	s.stepRocket()
	s.phases.Settle(s)

	if s.state.Phase >= PhaseSeparated && s.state.Phase < PhaseCaught {
		s.stepBooster()
		s.phases.Settle(s)
	}

	if s.state.Phase == PhaseCatching {
		s.stepArms()
		s.phases.Settle(s)
	}

	if s.state.Phase == PhaseCaught {
		s.pinBooster()
	}

	s.state.Done = s.state.Rocket.Pos.Y() > s.cfg.EndAltitude && s.state.Phase == PhaseCaught
	return s.state.Done
}

// stepRocket applies thrust or free fall with semi-implicit Euler
func (s *Simulation) stepRocket() {
	cfg := &s.cfg
	r := &s.state.Rocket

	if r.Fuel > 0 {
		r.Accel = mgl64.Vec3{0, cfg.Thrust/cfg.Mass - cfg.Gravity, 0}
		r.Thrusting = true
		r.BurnTicks++
		// Derived from the tick count so depletion lands on an exact tick
		r.Fuel = cfg.InitialFuel - float64(r.BurnTicks)*cfg.FuelBurnPerTick
	} else {
		r.Accel = mgl64.Vec3{0, -cfg.Gravity, 0}
		r.Thrusting = false
	}

	r.Vel = r.Vel.Add(r.Accel.Mul(cfg.Dt))
	r.Pos = r.Pos.Add(r.Vel.Mul(cfg.Dt))
}

// stepBooster integrates the separated booster: free fall above the landing zone, retro-burn inside it
func (s *Simulation) stepBooster() {
	cfg := &s.cfg
	b := &s.state.Booster
	s.touchdown = false

	if b.Pos.Y() > cfg.LandingZoneAltitude {
		b.Vel = b.Vel.Add(mgl64.Vec3{0, -cfg.Gravity, 0}.Mul(cfg.Dt))
		b.Pos = b.Pos.Add(b.Vel.Mul(cfg.Dt))
		return
	}

	if b.Vel.Y() < cfg.RetroBurnFloor {
		b.Vel[1] += cfg.RetroBurnStep
	}
	b.Pos = b.Pos.Add(b.Vel.Mul(cfg.Dt))
	if b.Pos.Y() <= cfg.LandingZoneAltitude {
		s.touchdown = true
	}
}

// stepArms closes each arm toward the centre until it is inside the closure threshold
func (s *Simulation) stepArms() {
	cfg := &s.cfg
	if s.state.LeftArm.Offset < -cfg.ArmClosure {
		s.state.LeftArm.Offset += cfg.ArmStep
	}
	if s.state.RightArm.Offset > cfg.ArmClosure {
		s.state.RightArm.Offset -= cfg.ArmStep
	}
}
