package fsm

import "fmt"

// AddState adds a node to the machine manually
// Useful for constructing the graph programmatically or during TOML load
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
		OnEnter:     make([]Action[T], 0),
		OnExit:      make([]Action[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
// Targets must be later states; anything else would allow a phase to be re-entered
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("unknown source state %d", sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("unknown target state %d", t.TargetID)
	}
	if t.TargetID <= sourceID {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, node.Name, m.nodes[t.TargetID].Name)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}
