package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/trinket/audio"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/engine"
	"github.com/lixenwraith/trinket/event"
	"github.com/lixenwraith/trinket/inventory"
	"github.com/lixenwraith/trinket/logging"
	"github.com/lixenwraith/trinket/parameter"
	"github.com/lixenwraith/trinket/seed"
	"github.com/lixenwraith/trinket/system"
	"github.com/lixenwraith/trinket/terminal"
)

var (
	configPath = flag.String("config", "", "Tuning YAML file (compiled-in defaults when empty)")
	seedPath   = flag.String("seed", "", "World seed YAML file (embedded world when empty)")
	logPath    = flag.String("log", "", "Log file (logging disabled when empty)")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logDev     = flag.Bool("log-dev", false, "Console log encoding with caller info")
	mute       = flag.Bool("mute", false, "Start with audio muted")
)

// Digest is logged at debug level this often
const digestEvery = 300

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trinket: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := logging.New(logging.Options{Level: *logLevel, Path: *logPath, Development: *logDev})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.NewString()))

	tuning, err := loadTuning(*configPath)
	if err != nil {
		return err
	}
	worldSeed, err := loadSeed(*seedPath)
	if err != nil {
		return err
	}

	world := engine.NewWorld(tuning, logger)
	if _, err := seed.Build(world, worldSeed, tuning); err != nil {
		return errors.Wrap(err, "build world")
	}
	world.Resource.Camera = initialCamera(world)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before the panic report reaches stderr
	core.SetCrashHook(func(r any, stack []byte) {
		screen.Fini()
		logger.Error("panic", zap.Any("value", r), zap.ByteString("stack", stack))
		_ = logger.Sync()
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	player := audio.NewPlayer(audio.DefaultConfig(), logger.Named("audio"))
	if err := player.Start(); err != nil {
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer player.Stop()
	if *mute {
		player.ToggleMute()
	}
	world.Resource.Audio = player

	view := terminal.NewView(screen, world)
	world.Resource.Presenter = view
	adapter := terminal.NewInputAdapter(parameter.KeyHoldWindow)
	adapter.SetViewport(view.Resize())

	system.Register(world)

	logger.Info("started",
		zap.Int("entities", len(world.Entities())),
		zap.Duration("tick", tuning.TickInterval),
		zap.Bool("silent", player.IsSilent()))

	actions := make(chan terminal.Action, 16)
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return pollEvents(ctx, screen, adapter, actions)
	})

	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		// Fini unblocks PollEvent in the input goroutine
		defer screen.Fini()
		return runLoop(ctx, world, view, adapter, screen, actions)
	})

	err = g.Wait()
	played, dropped := player.Stats()
	logger.Info("stopped",
		zap.Uint64("ticks", world.TickCount()),
		zap.Uint64("digest", world.Digest()),
		zap.Uint64("sounds_played", played),
		zap.Uint64("sounds_dropped", dropped))
	return err
}

func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.DefaultTuning(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Tuning{}, errors.Wrap(err, "open tuning")
	}
	defer f.Close()
	return config.LoadTuning(f)
}

func loadSeed(path string) (config.Seed, error) {
	if path == "" {
		return config.DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Seed{}, errors.Wrap(err, "open seed")
	}
	defer f.Close()
	return config.LoadSeed(f)
}

// initialCamera places the eye where the camera system will put it on the first tick
func initialCamera(world *engine.World) *engine.Camera {
	eye := mgl32.Vec3{0, parameter.CameraDefaultDistance, parameter.CameraDefaultDistance}
	player := world.Resource.Player
	if p, ok := world.WorldPlacement(player); ok {
		if t, ok := world.Components.CameraTarget.Get(player); ok {
			eye = system.OrbitEye(p.Position, t)
		}
	}
	return engine.NewCamera(eye, mgl32.Ident4())
}

// pollEvents feeds device events to the adapter and forwards front-end actions
func pollEvents(ctx context.Context, screen tcell.Screen, adapter *terminal.InputAdapter, actions chan<- terminal.Action) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		act := adapter.HandleEvent(ev, time.Now())
		if act.Kind == terminal.ActionNone {
			continue
		}
		select {
		case actions <- act:
		case <-ctx.Done():
			return nil
		}
		if act.Kind == terminal.ActionQuit {
			return nil
		}
	}
}

// runLoop owns the world: ticks, draws and applies front-end actions on one goroutine
func runLoop(ctx context.Context, world *engine.World, view *terminal.View, adapter *terminal.InputAdapter,
	screen tcell.Screen, actions <-chan terminal.Action) error {
	log := world.Resource.Logger.Named("loop")
	ticker := time.NewTicker(world.Resource.Tuning.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case act := <-actions:
			switch act.Kind {
			case terminal.ActionQuit:
				log.Info("quit requested")
				return nil

			case terminal.ActionMute:
				if world.Resource.Audio == nil {
					continue
				}
				if world.Resource.Audio.ToggleMute() {
					view.Log("Sound off.")
				} else {
					view.Log("Sound on.")
				}

			case terminal.ActionPlace:
				contents := inventory.Contents(world, world.Resource.Player)
				if act.Slot >= len(contents) {
					view.Log(fmt.Sprintf("Pack slot %d is empty.", act.Slot+1))
					continue
				}
				if !world.Submit(event.Request{Kind: event.RequestPlace, Target: contents[act.Slot].Item}) {
					log.Warn("request queue full", logging.Entity("item", contents[act.Slot].Item))
				}

			case terminal.ActionResize:
				screen.Sync()
				adapter.SetViewport(view.Resize())
			}

		case now := <-ticker.C:
			frame := view.Step(adapter.Snapshot(now))
			if frame.Tick%digestEvery == 0 {
				log.Debug("tick", zap.Uint64("tick", frame.Tick), zap.Uint64("digest", world.Digest()))
			}
		}
	}
}
