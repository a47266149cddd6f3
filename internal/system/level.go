package system

import (
	"time"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
)

// TransitionDelay is how long the level-complete banner stays up.
const TransitionDelay = 2 * time.Second

// Level watches clue progress. Once every clue is answered it holds the
// transition modal for Delay, then posts a request for the next level,
// or declares victory after the last one. Loading is left to the caller
// because it clears the manager, which must not happen mid-update.
type Level struct {
	Session *session.State
	Delay   time.Duration
	// Last is the final level number; zero means levels never run out.
	Last int

	since   time.Time
	pending int
}

func NewLevel(s *session.State, last int) *Level {
	return &Level{Session: s, Delay: TransitionDelay, Last: last}
}

func (l *Level) Update(*ecs.Manager, float64) {
	s := l.Session
	switch s.Modal {
	case session.ModalNone:
		if !s.LevelComplete() {
			return
		}
		if l.Last > 0 && s.Level >= l.Last {
			s.Modal = session.ModalVictory
			s.Media.StopMusic()
			s.Media.PlaySound("victory", 1)
			return
		}
		s.Modal = session.ModalTransition
		l.since = s.Now()
		s.Media.PlaySound("level", 1)
		s.Say("Level complete!", l.Delay)
	case session.ModalTransition:
		if l.pending == 0 && s.Now().Sub(l.since) >= l.Delay {
			l.pending = s.Level + 1
		}
	}
}

// Next returns and clears a pending level request.
func (l *Level) Next() (int, bool) {
	n := l.pending
	l.pending = 0
	return n, n != 0
}
