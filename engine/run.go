package engine

import (
	"context"
	"fmt"
)

// FrameFunc consumes each stepped state, typically by updating and drawing the scene
type FrameFunc func(Snapshot) error

// Run steps sim once per pacer tick until termination, cancellation, or a frame error
// Returns nil on termination and ctx.Err() on cancellation
func Run(ctx context.Context, sim *Simulation, pacer *Pacer, frame FrameFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pacer.C():
			done := sim.Step()
			snap := sim.Snapshot()
			if err := frame(snap); err != nil {
				return fmt.Errorf("frame at tick %d: %w", snap.Tick, err)
			}
			if done {
				return nil
			}
		}
	}
}
