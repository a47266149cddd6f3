package game

import (
	"io"
	"log/slog"
	"time"

	"clue-hunter/internal/session"
	"clue-hunter/internal/system"
)

// Config holds the knobs main exposes as flags.
type Config struct {
	Logger *slog.Logger
	// Clock defaults to the system clock.
	Clock session.Clock

	Seed       int64
	StartLevel int
	// GeneratedLevels follow the authored ones. The game is won after
	// the last of them.
	GeneratedLevels int

	FrameRate   int
	SoundVolume float64
	MusicVolume float64

	Rules system.Rules
}

func DefaultConfig() Config {
	return Config{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Seed:            time.Now().UnixNano(),
		StartLevel:      1,
		GeneratedLevels: 3,
		FrameRate:       60,
		SoundVolume:     0.8,
		MusicVolume:     0.4,
		Rules:           system.DefaultRules(),
	}
}
