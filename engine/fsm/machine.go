package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Observe registers a callback run after every completed transition
func (m *Machine[T]) Observe(fn ObserverFunc[T]) {
	m.observers = append(m.observers, fn)
}

// Init enters the initial state and runs its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.ticksInState = 0
	m.tick = 0
	m.history = m.history[:0]

	for _, action := range node.OnEnter {
		action.Func(ctx, action.Args)
	}
	return nil
}

// Advance marks the start of a new tick
func (m *Machine[T]) Advance() {
	m.tick++
	m.ticksInState++
}

// Evaluate checks the active state's transitions in declaration order and takes the first whose guard passes
// Returns true if a transition occurred
func (m *Machine[T]) Evaluate(ctx T) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, node, trans.TargetID)
			return true
		}
	}
	return false
}

// Settle evaluates repeatedly until no guard passes
// Bounded by the number of states since every transition moves forward
func (m *Machine[T]) Settle(ctx T) int {
	taken := 0
	for range len(m.nodes) {
		if !m.Evaluate(ctx) {
			break
		}
		taken++
	}
	return taken
}

// Transition moves to target if the active state declares an edge to it
// Guards are not consulted; the edge itself is the validation
func (m *Machine[T]) Transition(ctx T, target StateID) error {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return ErrNotInitialized
	}

	targetNode, ok := m.nodes[target]
	if !ok {
		return fmt.Errorf("%w: unknown state %d", ErrIllegalTransition, target)
	}

	if target <= node.ID {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, node.Name, targetNode.Name)
	}

	for _, trans := range node.Transitions {
		if trans.TargetID == target {
			m.transition(ctx, node, target)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, node.Name, targetNode.Name)
}

// transition performs the state change, exit actions first
func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	to := m.nodes[targetID]

	for _, action := range from.OnExit {
		action.Func(ctx, action.Args)
	}

	m.activeStateID = targetID
	m.ticksInState = 0

	for _, action := range to.OnEnter {
		action.Func(ctx, action.Args)
	}

	rec := Record{From: from.ID, To: targetID, Tick: m.tick}
	m.history = append(m.history, rec)

	for _, fn := range m.observers {
		fn(ctx, rec)
	}
}

// ActiveStateID returns the current state
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// ActiveStateName returns the current state name, empty before Init
func (m *Machine[T]) ActiveStateName() string {
	return m.StateName(m.activeStateID)
}

// StateName resolves an ID to its configured name
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TicksInState returns ticks elapsed since the last transition
func (m *Machine[T]) TicksInState() int {
	return m.ticksInState
}

// History returns a copy of all transitions taken since Init
func (m *Machine[T]) History() []Record {
	out := make([]Record, len(m.history))
	copy(out, m.history)
	return out
}

// EnteredAt returns the tick a state was entered, false if never
func (m *Machine[T]) EnteredAt(id StateID) (int, bool) {
	for _, rec := range m.history {
		if rec.To == id {
			return rec.Tick, true
		}
	}
	if id == m.InitialStateID && m.activeStateID != StateNone {
		return 0, true
	}
	return 0, false
}
