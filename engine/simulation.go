package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/booster-catch/engine/fsm"
	"github.com/lixenwraith/booster-catch/parameter"
)

// RocketState is the upper stage
type RocketState struct {
	Pos   mgl64.Vec3
	Vel   mgl64.Vec3
	Accel mgl64.Vec3 // Acceleration applied on the last tick

	Fuel      float64 // Percent, may dip below zero only through float error; display via DisplayFuel
	BurnTicks int     // Thrusting ticks consumed so far
	Thrusting bool    // Flame visible
}

// BoosterState is the recoverable first stage
type BoosterState struct {
	Pos     mgl64.Vec3
	Vel     mgl64.Vec3
	Visible bool
}

// ArmState is one catch arm; Offset is its x coordinate
type ArmState struct {
	Offset float64
}

// Snapshot is a value copy of the simulation state
type Snapshot struct {
	Tick  int
	Time  float64
	Phase Phase
	Done  bool

	Rocket   RocketState
	Booster  BoosterState
	LeftArm  ArmState
	RightArm ArmState
}

// Separated reports whether the booster has left the rocket
func (s Snapshot) Separated() bool { return s.Phase >= PhaseSeparated }

// CatchSequence reports whether the arms are closing
func (s Snapshot) CatchSequence() bool { return s.Phase == PhaseCatching }

// Caught reports whether the tower holds the booster
func (s Snapshot) Caught() bool { return s.Phase == PhaseCaught }

// DisplayFuel clamps fuel at zero for output
func (s Snapshot) DisplayFuel() float64 { return max(s.Rocket.Fuel, 0) }

// Altitude is the rocket's height above the pad
func (s Snapshot) Altitude() float64 { return s.Rocket.Pos.Y() }

// Simulation owns all mutable flight state
type Simulation struct {
	cfg    parameter.Scenario
	state  Snapshot
	phases *fsm.Machine[*Simulation]

	// Set by the landing-zone branch of the descent step, read by the BoosterInLandingZone guard
	touchdown bool

	listeners []func(PhaseChange)
}

// NewSimulation creates a simulation at the pad, in the Ascending phase
func NewSimulation(cfg parameter.Scenario) (*Simulation, error) {
	phases, err := newPhaseMachine()
	if err != nil {
		return nil, fmt.Errorf("phase machine: %w", err)
	}

	s := &Simulation{
		cfg:    cfg,
		phases: phases,
	}

	s.state.Rocket.Fuel = cfg.InitialFuel
	s.state.Booster.Pos = s.state.Rocket.Pos.Sub(cfg.BoosterDrop)
	s.state.LeftArm.Offset = -cfg.ArmStart
	s.state.RightArm.Offset = cfg.ArmStart

	phases.Observe(func(sim *Simulation, rec fsm.Record) {
		sim.state.Phase = Phase(rec.To)
		change := PhaseChange{From: Phase(rec.From), To: Phase(rec.To), Tick: rec.Tick}
		for _, fn := range sim.listeners {
			fn(change)
		}
	})

	if err := phases.Init(s); err != nil {
		return nil, fmt.Errorf("phase machine init: %w", err)
	}
	s.state.Phase = Phase(phases.ActiveStateID())

	return s, nil
}

// OnPhase registers a listener called synchronously after each phase transition
func (s *Simulation) OnPhase(fn func(PhaseChange)) {
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns a copy of the current state
func (s *Simulation) Snapshot() Snapshot {
	return s.state
}

// Scenario returns the immutable parameters of this run
func (s *Simulation) Scenario() parameter.Scenario {
	return s.cfg
}

// Phase returns the current flight phase
func (s *Simulation) Phase() Phase {
	return s.state.Phase
}

// PhaseHistory returns every transition taken so far
func (s *Simulation) PhaseHistory() []PhaseChange {
	hist := s.phases.History()
	out := make([]PhaseChange, len(hist))
	for i, rec := range hist {
		out[i] = PhaseChange{From: Phase(rec.From), To: Phase(rec.To), Tick: rec.Tick}
	}
	return out
}

// EnteredAt returns the tick a phase began, false if not yet reached
func (s *Simulation) EnteredAt(p Phase) (int, bool) {
	return s.phases.EnteredAt(fsm.StateID(p))
}

// Done reports whether the termination condition has been met
func (s *Simulation) Done() bool {
	return s.state.Done
}

// spawnBooster places the booster below the rocket with a share of its velocity
func (s *Simulation) spawnBooster() {
	r := &s.state.Rocket
	b := &s.state.Booster
	b.Pos = r.Pos.Sub(s.cfg.BoosterDrop)
	b.Vel = r.Vel.Mul(s.cfg.BoosterVelocityFactor)
	b.Visible = true
}

// pinBooster holds the booster at the catch point; idempotent
func (s *Simulation) pinBooster() {
	b := &s.state.Booster
	b.Pos = s.cfg.CatchPoint
	b.Vel = mgl64.Vec3{}
}
