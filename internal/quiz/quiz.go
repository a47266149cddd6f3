// Package quiz runs the question modal opened by touching a clue.
package quiz

import (
	"fmt"
	"time"

	"clue-hunter/assets"
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/factory"
	"clue-hunter/internal/session"

	"github.com/mattn/go-runewidth"
)

const (
	// FeedbackTime is how long the verdict stays on screen.
	FeedbackTime = 1500 * time.Millisecond
	// ReopenDelay keeps a clue the player is still standing on from
	// reopening the moment the modal closes.
	ReopenDelay = time.Second
)

// Quiz owns the question labels and the verdict label. It also runs as a
// system so the verdict expires on time.
type Quiz struct {
	Session   *session.State
	Manager   *ecs.Manager
	Questions []assets.Question
	// Width and Height are the screen size in cells, used for layout.
	Width, Height int

	clue     ecs.Handle
	question int
	labels   []*component.Label

	feedback      *component.Label
	feedbackUntil time.Time
	reopenAt      time.Time
}

func New(s *session.State, m *ecs.Manager, questions []assets.Question) *Quiz {
	return &Quiz{Session: s, Manager: m, Questions: questions, Width: 80, Height: 24}
}

// Active reports whether a question is on screen.
func (q *Quiz) Active() bool { return len(q.labels) > 0 }

// ShowQuestion opens the question attached to clue. It reports false when
// the question stays closed: another modal is up, the clue was just
// dismissed, the bank is empty or clue is not a clue.
func (q *Quiz) ShowQuestion(clue *ecs.Entity) bool {
	s := q.Session
	if q.Active() || s.Blocked() || s.Now().Before(q.reopenAt) || len(q.Questions) == 0 {
		return false
	}
	obj, ok := ecs.Lookup[*component.Object](clue)
	if !ok || obj.Kind != component.ObjectClue {
		return false
	}
	q.clue = clue.Handle()
	q.question = obj.Question % len(q.Questions)
	if q.question < 0 {
		q.question += len(q.Questions)
	}
	question := q.Questions[q.question]

	s.Modal = session.ModalQuiz
	row := q.Height/2 - (len(question.Answers)+2)/2
	q.add(question.Prompt, row, assets.FontQuestion)
	for i, a := range question.Answers {
		l := q.add(fmt.Sprintf("%d) %s", i+1, a), row+2+i, assets.FontAnswer)
		l.OnClick = func() { q.CheckAnswer(i) }
	}
	return true
}

func (q *Quiz) add(text string, row int, font string) *component.Label {
	x := max((q.Width-runewidth.StringWidth(text))/2, 0)
	l := factory.NewLabel(q.Manager, q.Session, text, x, row, font)
	q.labels = append(q.labels, l)
	return l
}

// CheckAnswer grades answer i and closes the question. A correct answer
// consumes the clue.
func (q *Quiz) CheckAnswer(i int) {
	if !q.Active() {
		return
	}
	s := q.Session
	question := q.Questions[q.question]
	if i == question.Correct {
		if clue, ok := q.Manager.Resolve(q.clue); ok {
			clue.Destroy()
		}
		s.CluesAnswered++
		s.Media.PlaySound("correct", 1)
		q.verdict("Correct!", assets.FontGood)
	} else {
		s.Media.PlaySound("wrong", 1)
		q.verdict("Wrong! Find the clue again.", assets.FontBad)
	}
	q.Close()
}

func (q *Quiz) verdict(text string, font string) {
	q.clearFeedback()
	x := max((q.Width-runewidth.StringWidth(text))/2, 0)
	q.feedback = factory.NewLabel(q.Manager, q.Session, text, x, q.Height/2, font)
	q.feedbackUntil = q.Session.Now().Add(FeedbackTime)
}

// Close removes the question without grading it.
func (q *Quiz) Close() {
	if !q.Active() {
		return
	}
	for _, l := range q.labels {
		l.Owner().Destroy()
	}
	q.labels = q.labels[:0]
	q.clue = ecs.NilHandle
	q.reopenAt = q.Session.Now().Add(ReopenDelay)
	if q.Session.Modal == session.ModalQuiz {
		q.Session.Modal = session.ModalNone
	}
}

// Feedback returns the verdict currently shown, if any.
func (q *Quiz) Feedback() (string, bool) {
	if q.feedback == nil {
		return "", false
	}
	return q.feedback.Text, true
}

func (q *Quiz) clearFeedback() {
	if q.feedback != nil {
		q.feedback.Owner().Destroy()
		q.feedback = nil
	}
}

// Reset forgets all labels, for when the manager was cleared.
func (q *Quiz) Reset() {
	q.labels = q.labels[:0]
	q.feedback = nil
	q.clue = ecs.NilHandle
	q.reopenAt = time.Time{}
}

// Update expires the verdict label.
func (q *Quiz) Update(*ecs.Manager, float64) {
	if q.feedback != nil && !q.Session.Now().Before(q.feedbackUntil) {
		q.clearFeedback()
	}
}

// Click forwards a pointer click to the answer labels.
func (q *Quiz) Click(x, y int) bool {
	for _, l := range q.labels {
		if l.OnClick != nil && l.Click(x, y) {
			return true
		}
	}
	return false
}

// Hover highlights the answer under the pointer.
func (q *Quiz) Hover(x, y int) {
	for _, l := range q.labels {
		if l.OnClick != nil {
			l.Hover(x, y)
		}
	}
}
