package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/logger"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/status"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status; deferred cleanup always completes before exit
func run(args []string) int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logFile, err := logger.Setup(logger.Options{
		Debug:  cfg.Debug,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.Session()

	log.WithFields(logrus.Fields{
		"width":    cfg.Board.Width,
		"height":   cfg.Board.Height,
		"interval": cfg.FrameInterval.String(),
		"seed":     cfg.Seed,
		"audio":    cfg.Audio.Enabled,
	}).Info("Starting snake")

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake needs an interactive terminal")
		return 1
	}

	// Build the board before touching the terminal so precondition errors print normally
	state, err := game.NewState(cfg.Board, game.NewSpawner(cfg.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		return 1
	}
	state.Init()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashReset(screen.Fini)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	if w, h := screen.Size(); w < cfg.Board.Width*render.CellWidth || h < cfg.Board.Height+2 {
		log.WithFields(logrus.Fields{"cols": w, "rows": h}).Warn("Terminal smaller than board, output will be clipped")
	}

	reg := status.NewRegistry()

	// Non-fatal, game can run without sound
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("Audio initialization failed")
	}
	defer sound.Cleanup()
	reg.Bools.Get(status.Audio).Store(sound.Initialized())

	renderer := render.NewRenderer(screen)
	resizes := reg.Ints.Get(status.Resizes)
	poller := input.NewPoller(screen, input.DefaultKeyTable(), func() {
		resizes.Add(1)
		log.Debug("Terminal resized")
		renderer.Sync()
	})
	poller.Start()
	defer poller.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(state, poller, renderer,
		engine.WithInterval(cfg.FrameInterval),
		engine.WithSound(sound),
		engine.WithLogger(log),
		engine.WithStatus(reg),
	)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Game loop failed")
		return 1
	}

	log.WithFields(logrus.Fields(reg.Fields())).Info("Exiting")
	return 0
}

// loadConfig layers command-line flags over environment and dotenv settings
func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	envFile := fs.String("env", config.DefaultEnvFile, "Optional dotenv file")
	width := fs.Int("width", 0, "Board width in cells")
	height := fs.Int("height", 0, "Board height in cells")
	interval := fs.Duration("interval", 0, "Frame interval, e.g. 80ms")
	seed := fs.Uint64("seed", 0, "Fruit placement seed, 0 for random")
	mute := fs.Bool("mute", false, "Disable sound")
	volume := fs.Int("volume", 0, "Master volume 0-100")
	debug := fs.Bool("debug", false, "Write debug logs to logs/snake.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}

	// Only flags given explicitly override lower layers
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Board.Width = *width
		case "height":
			cfg.Board.Height = *height
		case "interval":
			cfg.FrameInterval = *interval
		case "seed":
			cfg.Seed = *seed
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "volume":
			cfg.SetMasterVolumePercent(*volume)
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
