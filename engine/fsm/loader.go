package fsm

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions) and rejects backward edges
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	// 1. Decode TOML into intermediate config
	var config RootConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}

	if len(config.Order) == 0 {
		return fmt.Errorf("FSM config has no state order")
	}

	// 2. Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.history = m.history[:0]

	// 3. First Pass: IDs follow the declared order
	nameToID := make(map[string]StateID, len(config.Order))
	for i, name := range config.Order {
		if _, dup := nameToID[name]; dup {
			return fmt.Errorf("state '%s' listed twice in order", name)
		}
		id := StateID(i + 1)
		nameToID[name] = id
		m.AddState(id, name)
	}

	for name := range config.States {
		if _, ok := nameToID[name]; !ok {
			return fmt.Errorf("state '%s' is not listed in order", name)
		}
	}

	// 4. Second Pass: actions and transitions
	for _, name := range config.Order {
		cfg, ok := config.States[name]
		if !ok {
			continue
		}
		node := m.nodes[nameToID[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}

		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	// 5. Validate initial state
	initial := config.InitialState
	if initial == "" {
		initial = config.Order[0]
	}
	initialID, ok := nameToID[initial]
	if !ok {
		return fmt.Errorf("initial state '%s' not found", initial)
	}
	m.InitialStateID = initialID

	return nil
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	for id, node := range m.nodes {
		if node.Name == name {
			return id, true
		}
	}
	return StateNone, false
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{
			Func: fn,
			Args: cfg.Args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		if err := m.AddTransition(node.ID, Transition[T]{
			TargetID:  targetID,
			Guard:     guard,
			GuardName: cfg.Guard,
		}); err != nil {
			return err
		}
	}
	return nil
}
