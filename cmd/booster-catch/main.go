package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/booster-catch/audio"
	"github.com/lixenwraith/booster-catch/config"
	"github.com/lixenwraith/booster-catch/core"
	"github.com/lixenwraith/booster-catch/metrics"
	"github.com/lixenwraith/booster-catch/render"
)

func main() {
	// Panic Recovery: finalise the screen even if the run crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one launch and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "booster-catch: %v\n", err)
		return 2
	}

	if cfg.WriteConfig != "" {
		if err := cfg.Write(cfg.WriteConfig); err != nil {
			fmt.Fprintf(stderr, "booster-catch: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Configuration written to %s\n", cfg.WriteConfig)
		return 0
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := launch(ctx, cfg, stdout); err != nil {
		if interrupted(err) {
			log.Printf("Run interrupted: %v", err)
			return 0
		}
		log.Printf("Run failed: %v", err)
		fmt.Fprintf(stderr, "booster-catch: %v\n", err)
		return 1
	}
	log.Printf("Run finished")
	return 0
}

func launch(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var recorder *metrics.Recorder
	if cfg.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		srv, err := metrics.Listen(cfg.MetricsAddr, recorder)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Metrics server: %v", err)
			}
		}()
	}

	sound := audio.NewSoundManager(nil)
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio unavailable: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	var renderer render.Renderer
	if cfg.Headless {
		renderer = render.NewText(stdout, cfg.HeadlessEvery)
	} else {
		mode, _ := render.ParseColorMode(cfg.Color)
		term, err := render.OpenTerminal(mode, true)
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		core.SetCrashScreen(term.Screen())
		defer core.SetCrashScreen(nil)
		log.Printf("Terminal color mode: %s", term.Mode())
		pollEvents(term.Screen(), cancel)
		renderer = term
	}
	defer renderer.Close()

	a, err := newApp(cfg, renderer, sound, recorder)
	if err != nil {
		return err
	}
	return a.run(ctx)
}

// pollEvents cancels the run on q, Esc or Ctrl-C and resyncs on resize
// The poller exits when the screen is finalised
func pollEvents(screen tcell.Screen, cancel context.CancelFunc) {
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					log.Printf("Quit key pressed")
					cancel()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
