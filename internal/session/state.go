// Package session holds the per-session game context shared by systems and
// components: modal flags, clock, input, the player handle and level
// progress. A State is created at session start and reset at level and
// restart boundaries.
package session

import (
	"time"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/media"
)

// Modal identifies a state that suspends normal gameplay.
type Modal uint8

const (
	ModalNone Modal = iota
	ModalQuiz
	ModalPaused
	ModalTransition
	ModalGameOver
	ModalVictory
)

func (m Modal) String() string {
	switch m {
	case ModalQuiz:
		return "quiz"
	case ModalPaused:
		return "paused"
	case ModalTransition:
		return "transition"
	case ModalGameOver:
		return "game over"
	case ModalVictory:
		return "victory"
	}
	return "none"
}

// Message is a HUD line that expires.
type Message struct {
	Text  string
	Until time.Time
}

// State is the explicit game context.
type State struct {
	Clock Clock
	Input Input
	Media media.Provider

	Player ecs.Handle
	Modal  Modal

	Level         int
	CluesTotal    int
	CluesAnswered int
	Kills         int

	// LevelStarted is when the current level began.
	LevelStarted time.Time

	messages []Message
}

// New creates a State using clock and provider. A nil provider plays and
// draws nothing.
func New(clock Clock, provider media.Provider) *State {
	if clock == nil {
		clock = SystemClock{}
	}
	if provider == nil {
		provider = media.Nop{}
	}
	return &State{Clock: clock, Media: provider, Level: 1}
}

func (s *State) Now() time.Time { return s.Clock.Now() }

// Blocked reports whether a modal state suspends AI, movement and collision.
func (s *State) Blocked() bool { return s.Modal != ModalNone }

// SinceLevelStart returns the wall-clock time spent in the current level.
func (s *State) SinceLevelStart() time.Duration { return s.Now().Sub(s.LevelStarted) }

// StartLevel resets per-level progress.
func (s *State) StartLevel(level, clues int) {
	s.Level = level
	s.CluesTotal = clues
	s.CluesAnswered = 0
	s.Modal = ModalNone
	s.Player = ecs.NilHandle
	s.LevelStarted = s.Now()
	s.Input.Reset()
}

// LevelComplete reports whether every clue of the level was answered.
func (s *State) LevelComplete() bool {
	return s.CluesTotal > 0 && s.CluesAnswered >= s.CluesTotal
}

// Say shows text on the HUD for ttl.
func (s *State) Say(text string, ttl time.Duration) {
	s.messages = append(s.messages, Message{Text: text, Until: s.Now().Add(ttl)})
}

// Messages returns the unexpired messages, oldest first, and drops the rest.
func (s *State) Messages() []Message {
	now := s.Now()
	kept := s.messages[:0]
	for _, m := range s.messages {
		if now.Before(m.Until) {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return kept
}
