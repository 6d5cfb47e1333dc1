package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	value   int
	entered []string
	exited  []string
}

const lineGraph = `
initial = "Idle"
order = ["Idle", "Armed", "Fired"]

[states.Idle]
on_exit = [{ action = "Exit", args = { name = "Idle" } }]
transitions = [{ target = "Armed", guard = "AtLeastTwo" }]

[states.Armed]
on_enter = [{ action = "Enter", args = { name = "Armed" } }]
transitions = [{ target = "Fired", guard = "AtLeastFive" }]

[states.Fired]
on_enter = [{ action = "Enter", args = { name = "Fired" } }]
`

func newLineMachine(t *testing.T) *Machine[*counter] {
	t.Helper()
	m := NewMachine[*counter]()
	m.RegisterGuard("AtLeastTwo", func(c *counter) bool { return c.value >= 2 })
	m.RegisterGuard("AtLeastFive", func(c *counter) bool { return c.value >= 5 })
	m.RegisterAction("Enter", func(c *counter, args map[string]any) {
		c.entered = append(c.entered, args["name"].(string))
	})
	m.RegisterAction("Exit", func(c *counter, args map[string]any) {
		c.exited = append(c.exited, args["name"].(string))
	})
	require.NoError(t, m.LoadConfig([]byte(lineGraph)))
	return m
}

func TestLoadConfigAssignsOrderedIDs(t *testing.T) {
	m := newLineMachine(t)

	for i, name := range []string{"Idle", "Armed", "Fired"} {
		id, ok := m.GetStateID(name)
		require.True(t, ok, name)
		assert.Equal(t, StateID(i+1), id)
	}
	assert.Equal(t, StateID(1), m.InitialStateID)
}

func TestEvaluateFollowsGuards(t *testing.T) {
	m := newLineMachine(t)
	c := &counter{}
	require.NoError(t, m.Init(c))

	m.Advance()
	assert.False(t, m.Evaluate(c))
	assert.Equal(t, "Idle", m.ActiveStateName())

	c.value = 2
	m.Advance()
	assert.True(t, m.Evaluate(c))
	assert.Equal(t, "Armed", m.ActiveStateName())
	assert.Equal(t, []string{"Idle"}, c.exited)
	assert.Equal(t, []string{"Armed"}, c.entered)
	assert.Equal(t, 0, m.TicksInState())
}

func TestSettleChainsForward(t *testing.T) {
	m := newLineMachine(t)
	c := &counter{}
	require.NoError(t, m.Init(c))

	c.value = 9
	m.Advance()
	assert.Equal(t, 2, m.Settle(c))
	assert.Equal(t, "Fired", m.ActiveStateName())

	hist := m.History()
	require.Len(t, hist, 2)
	assert.Equal(t, Record{From: 1, To: 2, Tick: 1}, hist[0])
	assert.Equal(t, Record{From: 2, To: 3, Tick: 1}, hist[1])

	// Terminal state has no transitions
	assert.Equal(t, 0, m.Settle(c))
}

func TestTransitionRejectsUndeclaredEdge(t *testing.T) {
	m := newLineMachine(t)
	c := &counter{}
	require.NoError(t, m.Init(c))

	err := m.Transition(c, 3)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, "Idle", m.ActiveStateName())

	require.NoError(t, m.Transition(c, 2))
	err = m.Transition(c, 1)
	assert.ErrorIs(t, err, ErrBackwardTransition)
	assert.Equal(t, "Armed", m.ActiveStateName())
}

func TestTransitionBeforeInit(t *testing.T) {
	m := newLineMachine(t)
	assert.ErrorIs(t, m.Transition(&counter{}, 2), ErrNotInitialized)
}

func TestLoadConfigRejectsBackwardEdge(t *testing.T) {
	m := NewMachine[*counter]()
	err := m.LoadConfig([]byte(`
order = ["A", "B"]
[states.B]
transitions = [{ target = "A" }]
`))
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestLoadConfigRejectsSelfLoop(t *testing.T) {
	m := NewMachine[*counter]()
	err := m.LoadConfig([]byte(`
order = ["A", "B"]
[states.A]
transitions = [{ target = "A" }]
`))
	assert.ErrorIs(t, err, ErrBackwardTransition)
}

func TestLoadConfigRejectsUnknownReferences(t *testing.T) {
	cases := map[string]string{
		"unknown guard": `
order = ["A", "B"]
[states.A]
transitions = [{ target = "B", guard = "Nope" }]
`,
		"unknown target": `
order = ["A"]
[states.A]
transitions = [{ target = "Z" }]
`,
		"unknown action": `
order = ["A"]
[states.A]
on_enter = [{ action = "Nope" }]
`,
		"unordered state": `
order = ["A"]
[states.B]
`,
		"missing initial": `
initial = "Q"
order = ["A"]
`,
		"empty order": `
initial = "A"
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			m := NewMachine[*counter]()
			assert.Error(t, m.LoadConfig([]byte(doc)))
		})
	}
}

func TestObserversSeeEveryTransition(t *testing.T) {
	m := newLineMachine(t)
	c := &counter{}
	var seen []Record
	m.Observe(func(_ *counter, rec Record) { seen = append(seen, rec) })
	require.NoError(t, m.Init(c))

	c.value = 5
	m.Advance()
	m.Advance()
	m.Settle(c)

	require.Len(t, seen, 2)
	assert.Equal(t, 2, seen[0].Tick)

	tick, ok := m.EnteredAt(3)
	assert.True(t, ok)
	assert.Equal(t, 2, tick)

	tick, ok = m.EnteredAt(1)
	assert.True(t, ok)
	assert.Equal(t, 0, tick)
}
