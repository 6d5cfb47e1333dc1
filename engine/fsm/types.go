package fsm

import "errors"

// StateID is a unique identifier for a node
// IDs follow declaration order starting at 1, so a larger ID is a later state
type StateID int

const StateNone StateID = 0

// Sentinel errors
var (
	ErrIllegalTransition  = errors.New("fsm: illegal transition")
	ErrBackwardTransition = errors.New("fsm: backward transition")
	ErrNotInitialized     = errors.New("fsm: machine not initialized")
)

// Machine is a forward-only finite state machine
// T is the context type passed to actions and guards (e.g., *engine.Simulation)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID StateID
	ticksInState  int
	tick          int
	history       []Record

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
	observers []ObserverFunc[T]
}

// Node represents a state in the graph
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID  StateID
	Guard     GuardFunc[T] // nil = Always true
	GuardName string
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// Record is one entry of the transition history
type Record struct {
	From StateID
	To   StateID
	Tick int
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)

// ObserverFunc is notified after a transition completes
type ObserverFunc[T any] func(ctx T, rec Record)
