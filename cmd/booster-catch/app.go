package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/booster-catch/audio"
	"github.com/lixenwraith/booster-catch/config"
	"github.com/lixenwraith/booster-catch/engine"
	"github.com/lixenwraith/booster-catch/metrics"
	"github.com/lixenwraith/booster-catch/parameter"
	"github.com/lixenwraith/booster-catch/render"
	"github.com/lixenwraith/booster-catch/scene"
)

// app wires one run: simulation, scene director, renderer, sound and metrics
type app struct {
	cfg      config.Config
	sim      *engine.Simulation
	director *scene.Director
	renderer render.Renderer
	sound    *audio.SoundManager
	recorder *metrics.Recorder

	countdownStep time.Duration
	liftoffHold   time.Duration
}

func newApp(cfg config.Config, renderer render.Renderer, sound *audio.SoundManager, recorder *metrics.Recorder) (*app, error) {
	scenario := parameter.DefaultScenario()

	sim, err := engine.NewSimulation(scenario)
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	sc, rig := scene.Build(scenario, rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))

	a := &app{
		cfg:           cfg,
		sim:           sim,
		director:      scene.NewDirector(sc, rig, scenario),
		renderer:      renderer,
		sound:         sound,
		recorder:      recorder,
		countdownStep: parameter.CountdownStep,
		liftoffHold:   parameter.LiftoffHold,
	}
	sim.OnPhase(a.onPhase)
	return a, nil
}

// run plays the countdown, flies to the catch and holds the final frame
// Returns ctx.Err() when interrupted
func (a *app) run(ctx context.Context) error {
	if err := a.renderer.Render(a.director.Scene()); err != nil {
		return fmt.Errorf("first frame: %w", err)
	}

	if a.cfg.Countdown {
		if err := a.countdown(ctx); err != nil {
			return err
		}
	}

	pacer := engine.NewPacer(a.cfg.FPS)
	defer pacer.Stop()
	log.Printf("Flight started at %d ticks/s", a.cfg.FPS)

	err := engine.Run(ctx, a.sim, pacer, a.frame)
	a.sound.StopRumble()
	if err != nil {
		return err
	}

	snap := a.sim.Snapshot()
	log.Printf("Flight complete at tick %d (t=%.2fs, altitude %.2fm)", snap.Tick, snap.Time, snap.Altitude())
	return a.hold(ctx)
}

// countdown shows "Launch in n..." once per step, then "Liftoff!"
func (a *app) countdown(ctx context.Context) error {
	for n := a.cfg.CountdownSeconds; n > 0; n-- {
		if err := a.director.Countdown(n); err != nil {
			return fmt.Errorf("countdown: %w", err)
		}
		a.sound.PlayCountdown()
		if err := a.renderer.Render(a.director.Scene()); err != nil {
			return fmt.Errorf("countdown frame: %w", err)
		}
		if err := sleep(ctx, a.countdownStep); err != nil {
			return err
		}
	}

	if err := a.director.Liftoff(); err != nil {
		return fmt.Errorf("liftoff: %w", err)
	}
	a.sound.PlayLiftoff()
	if err := a.renderer.Render(a.director.Scene()); err != nil {
		return fmt.Errorf("liftoff frame: %w", err)
	}
	if err := sleep(ctx, a.liftoffHold); err != nil {
		return err
	}
	if err := a.director.HideCountdown(); err != nil {
		return fmt.Errorf("hide countdown: %w", err)
	}
	return nil
}

// frame is the per-tick callback of engine.Run
func (a *app) frame(snap engine.Snapshot) error {
	if a.recorder != nil {
		a.recorder.Observe(snap)
	}

	if snap.Rocket.Thrusting && !a.sound.Rumbling() {
		a.sound.StartRumble()
	} else if !snap.Rocket.Thrusting && a.sound.Rumbling() {
		a.sound.StopRumble()
	}

	if err := a.director.Apply(snap); err != nil {
		return err
	}
	if snap.Done {
		a.director.Finish(snap)
	}
	return a.renderer.Render(a.director.Scene())
}

// hold keeps the final frame up; headless runs return immediately
func (a *app) hold(ctx context.Context) error {
	if a.cfg.Headless || a.cfg.Hold <= 0 {
		return nil
	}
	return sleep(ctx, a.cfg.Hold)
}

func (a *app) onPhase(c engine.PhaseChange) {
	log.Printf("Phase %s -> %s at tick %d", c.From, c.To, c.Tick)

	if a.recorder != nil {
		a.recorder.ObservePhase(c)
	}

	switch c.To {
	case engine.PhaseSeparated:
		a.sound.PlayWhoosh()
	case engine.PhaseCaught:
		a.sound.PlayChime()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// interrupted reports whether err only signals a user or signal cancellation
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
