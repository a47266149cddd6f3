// clue-hunter is a terminal top-down action game: explore each level,
// shoot your way past its monsters and answer the question behind every
// clue to move on.
//
// Usage:
//
//	./clue-hunter [-level 1] [-seed N] [-mute] [-log clue-hunter.log] [-profile cpu|mem]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"clue-hunter/assets"
	"clue-hunter/internal/game"
	"clue-hunter/internal/media"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/profile"
)

// speakerLock serialises mixer changes with the speaker's playback goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

func main() {
	cfg := game.DefaultConfig()
	level := flag.Int("level", cfg.StartLevel, "level to start on")
	seed := flag.Int64("seed", cfg.Seed, "seed for generated levels")
	generated := flag.Int("generated", cfg.GeneratedLevels, "number of generated levels after the authored ones")
	mute := flag.Bool("mute", false, "disable sound and music")
	logPath := flag.String("log", "clue-hunter.log", "log file (the terminal belongs to the game)")
	prof := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(cfg, *level, *seed, *generated, *mute, *logPath, *prof); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, level int, seed int64, generated int, mute bool, logPath, prof string) error {
	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", prof)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	cfg.Logger = logger
	cfg.StartLevel = level
	cfg.Seed = seed
	cfg.GeneratedLevels = generated

	lib := media.NewLibrary()
	if err := assets.Load(lib); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	if !mute {
		if err := speaker.Init(media.SampleRate, media.SampleRate.N(time.Second/10)); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			lib.SetLocker(speakerLock{})
			speaker.Play(lib.Output())
			defer speaker.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	g, err := game.New(screen, lib, cfg)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return g.Run(ctx)
}
