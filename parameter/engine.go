package parameter

import "time"

// Loop pacing
const (
	// TickRate is the target number of simulation ticks per second (one tick per rendered frame)
	TickRate = 100

	// MinTickRate and MaxTickRate bound the configurable pacing
	MinTickRate = 1
	MaxTickRate = 1000
)

// Countdown sequence
const (
	// CountdownFrom is the first number shown before liftoff
	CountdownFrom = 10

	// CountdownStep is the delay between countdown numbers
	CountdownStep = time.Second

	// LiftoffHold is how long "Liftoff!" stays on screen
	LiftoffHold = 500 * time.Millisecond

	// FinalHold is how long the final frame stays on screen after the catch
	FinalHold = 3 * time.Second
)

// Headless output
const (
	// HeadlessEvery is the default number of ticks between telemetry prints
	HeadlessEvery = 50
)
