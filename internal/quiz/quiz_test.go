package quiz

import (
	"testing"
	"time"

	"clue-hunter/assets"
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/factory"
	"clue-hunter/internal/media"
	"clue-hunter/internal/session"
	"clue-hunter/internal/system"
)

type recorder struct {
	media.Nop
	sounds []string
}

func (r *recorder) PlaySound(id string, _ float64) { r.sounds = append(r.sounds, id) }

var questions = []assets.Question{
	{Prompt: "2+2?", Answers: []string{"3", "4"}, Correct: 1},
	{Prompt: "Sky?", Answers: []string{"blue", "green", "red"}, Correct: 0},
}

func setup() (*Quiz, *ecs.Manager, *session.State, *session.ManualClock, *recorder) {
	clock := session.NewManualClock()
	rec := &recorder{}
	s := session.New(clock, rec)
	s.StartLevel(1, 1)
	m := ecs.NewManager()
	q := New(s, m, questions)
	return q, m, s, clock, rec
}

func TestShowQuestionOpensModal(t *testing.T) {
	q, m, s, _, _ := setup()
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 1)

	if !q.ShowQuestion(clue) {
		t.Fatal("ShowQuestion reported closed")
	}
	if !q.Active() || s.Modal != session.ModalQuiz {
		t.Fatalf("active=%v modal=%v", q.Active(), s.Modal)
	}
	// prompt plus three answers
	if got := len(m.Group(component.GroupUI)); got != 4 {
		t.Errorf("ui labels = %d; want 4", got)
	}

	if q.ShowQuestion(clue) {
		t.Error("second show reported a new question")
	}
	if got := len(m.Group(component.GroupUI)); got != 4 {
		t.Errorf("second show added labels: %d", got)
	}
}

func TestCorrectAnswerConsumesClue(t *testing.T) {
	q, m, s, clock, rec := setup()
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 0)
	q.ShowQuestion(clue)

	q.CheckAnswer(1)
	if clue.IsActive() {
		t.Error("clue should be destroyed")
	}
	if s.CluesAnswered != 1 || s.Modal != session.ModalNone || q.Active() {
		t.Errorf("answered=%d modal=%v active=%v", s.CluesAnswered, s.Modal, q.Active())
	}
	if text, ok := q.Feedback(); !ok || text != "Correct!" {
		t.Errorf("feedback = %q, %v", text, ok)
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != "correct" {
		t.Errorf("sounds = %v", rec.sounds)
	}

	clock.Advance(FeedbackTime - time.Millisecond)
	q.Update(m, 0)
	if _, ok := q.Feedback(); !ok {
		t.Error("feedback expired early")
	}
	clock.Advance(time.Millisecond)
	q.Update(m, 0)
	if _, ok := q.Feedback(); ok {
		t.Error("feedback should have expired")
	}

	m.Refresh()
	if got := len(m.Group(component.GroupUI)); got != 0 {
		t.Errorf("ui labels after refresh = %d", got)
	}
}

func TestWrongAnswerKeepsClue(t *testing.T) {
	q, m, s, clock, rec := setup()
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 0)
	q.ShowQuestion(clue)

	q.CheckAnswer(0)
	if !clue.IsActive() || s.CluesAnswered != 0 {
		t.Errorf("clue active=%v answered=%d", clue.IsActive(), s.CluesAnswered)
	}
	if s.Modal != session.ModalNone {
		t.Errorf("modal = %v", s.Modal)
	}
	if rec.sounds[0] != "wrong" {
		t.Errorf("sounds = %v", rec.sounds)
	}

	if q.ShowQuestion(clue) || q.Active() {
		t.Error("clue reopened immediately")
	}
	clock.Advance(ReopenDelay)
	if !q.ShowQuestion(clue) || !q.Active() {
		t.Error("clue should reopen after the delay")
	}
}

func TestClickAnswer(t *testing.T) {
	q, m, s, _, _ := setup()
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 0)
	q.ShowQuestion(clue)

	var answer *component.Label
	for _, e := range m.Group(component.GroupUI) {
		l, _ := ecs.Lookup[*component.Label](e)
		if l.Text == "2) 4" {
			answer = l
		}
	}
	if answer == nil {
		t.Fatal("answer label not found")
	}
	if q.Click(answer.X-1, answer.Y) {
		t.Error("click left of label should miss")
	}
	if !q.Click(answer.X, answer.Y) {
		t.Fatal("click on label should hit")
	}
	if s.CluesAnswered != 1 {
		t.Error("clicking the right answer should count")
	}
}

func TestShowQuestionIgnoresNonClues(t *testing.T) {
	q, m, s, _, _ := setup()
	mag := factory.NewObject(m, s, 1, 1, component.ObjectMagazine, 0)
	if q.ShowQuestion(mag) || q.Active() {
		t.Error("magazine opened a quiz")
	}
}

func TestEmptyBankNeverOpens(t *testing.T) {
	_, m, s, _, _ := setup()
	q := New(s, m, nil)
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 0)
	if q.ShowQuestion(clue) || s.Modal != session.ModalNone {
		t.Errorf("empty bank opened a question, modal=%v", s.Modal)
	}
}

// Standing on a clue that was just answered wrong must not pause fights.
func TestDismissedClueLeavesCombatRunning(t *testing.T) {
	q, m, s, clock, _ := setup()
	m.AddSystem(system.NewCollision(s, q, system.DefaultRules()))
	m.AddSystem(q)
	factory.NewPlayer(m, s, 1, 1, assets.Player)
	clue := factory.NewObject(m, s, 1, 1, component.ObjectClue, 0)
	enemy := m.AddEntity()
	ecs.MustAdd(enemy, component.NewTransform(factory.CellOrigin(1, 1, 1), component.TileSize, component.TileSize, 1))
	ecs.MustAdd(enemy, component.NewCollider("enemy"))
	enemy.AddGroup(component.GroupEnemies)
	clock.Advance(2 * time.Second)

	m.Update(0.1)
	if !q.Active() {
		t.Fatal("touching the clue should open the quiz")
	}
	q.CheckAnswer(0)
	if !clue.IsActive() {
		t.Fatal("wrong answer consumed the clue")
	}

	player, _ := m.Resolve(s.Player)
	health, _ := ecs.Lookup[*component.Health](player)
	for range 5 {
		clock.Advance(100 * time.Millisecond)
		m.Update(0.1)
	}
	if q.Active() {
		t.Error("clue reopened inside the delay")
	}
	if health.Current >= assets.Player.MaxHP {
		t.Errorf("hp=%d: overlapping enemy dealt no damage", health.Current)
	}
}
