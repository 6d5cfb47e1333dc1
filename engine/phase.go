package engine

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/lixenwraith/booster-catch/engine/fsm"
)

//go:embed phases.toml
var phaseGraph []byte

// Phase is the flight stage; values only ever increase during a run
type Phase int

const (
	PhaseNone Phase = iota
	PhaseAscending
	PhaseSeparated
	PhaseDescending
	PhaseCatching
	PhaseCaught
)

var phaseNames = [...]string{
	PhaseNone:       "None",
	PhaseAscending:  "Ascending",
	PhaseSeparated:  "Separated",
	PhaseDescending: "Descending",
	PhaseCatching:   "Catching",
	PhaseCaught:     "Caught",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// PhaseChange is delivered to listeners after every transition
type PhaseChange struct {
	From Phase
	To   Phase
	Tick int
}

// newPhaseMachine loads the phase graph with the simulation's guards and actions
func newPhaseMachine() (*fsm.Machine[*Simulation], error) {
	m := fsm.NewMachine[*Simulation]()

	m.RegisterGuard("RocketAtSeparationAltitude", func(s *Simulation) bool {
		return s.state.Rocket.Pos.Y() >= s.cfg.SeparationAltitude
	})
	m.RegisterGuard("BoosterFalling", func(s *Simulation) bool {
		b := &s.state.Booster
		return b.Vel.Y() < 0 || b.Pos.Y() <= s.cfg.LandingZoneAltitude
	})
	m.RegisterGuard("BoosterInLandingZone", func(s *Simulation) bool {
		return s.touchdown
	})
	m.RegisterGuard("ArmsClosed", func(s *Simulation) bool {
		closure := s.cfg.ArmClosure
		return math.Abs(s.state.LeftArm.Offset) < closure && math.Abs(s.state.RightArm.Offset) < closure
	})

	m.RegisterAction("SpawnBooster", func(s *Simulation, _ map[string]any) {
		s.spawnBooster()
	})
	m.RegisterAction("PinBooster", func(s *Simulation, _ map[string]any) {
		s.pinBooster()
	})

	if err := m.LoadConfig(phaseGraph); err != nil {
		return nil, err
	}

	// Phase constants mirror the declared order
	for p := PhaseAscending; p <= PhaseCaught; p++ {
		id, ok := m.GetStateID(p.String())
		if !ok || Phase(id) != p {
			return nil, fmt.Errorf("phase graph: %s has id %d, want %d", p, id, p)
		}
	}

	return m, nil
}
