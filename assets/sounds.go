package assets

import (
	"time"

	"clue-hunter/internal/media"
)

// MusicTheme is the looping background track.
const MusicTheme = "theme"

const (
	ms = time.Millisecond

	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
)

func notes(d time.Duration, freqs ...float64) []media.Note {
	out := make([]media.Note, len(freqs))
	for i, f := range freqs {
		out[i] = media.Note{Freq: f, Duration: d}
	}
	return out
}

var sounds = map[string][]media.Note{
	"shoot":    notes(30*ms, 880, 660),
	"empty":    notes(40*ms, 120, 0, 120),
	"hit":      notes(40*ms, 220, 180),
	"hurt":     notes(60*ms, 160, 110),
	"pickup":   notes(50*ms, e5, g5),
	"heal":     notes(70*ms, c5, e5, g5),
	"correct":  notes(90*ms, c5, e5, g5, c5*2),
	"wrong":    notes(150*ms, 196, 147),
	"level":    notes(120*ms, g4, c5, e5),
	"victory":  notes(150*ms, c5, c5, g5, 0, e5, c5*2),
	"gameover": notes(200*ms, g4, e4, c4),
	MusicTheme: notes(220*ms, c4, e4, g4, e4, d4, g4, a4, g4, 0, c4, g4, e4),
}
