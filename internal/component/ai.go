package component

import (
	"fmt"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"
)

// AIState is the behavior an enemy picked for the current frame.
type AIState uint8

const (
	StateIdle AIState = iota
	StateChase
	StateBackoff
	StateBuffer
)

func (s AIState) String() string {
	switch s {
	case StateChase:
		return "chase"
	case StateBackoff:
		return "backoff"
	case StateBuffer:
		return "buffer"
	}
	return "idle"
}

// AIParams are the distance thresholds, in pixels, and speed in pixels per
// second. BackoffDistance sits slightly below MinDistance.
type AIParams struct {
	ChaseRange      float64
	MinDistance     float64
	BackoffDistance float64
	MoveSpeed       float64
}

// Classify maps a target distance to a state.
//
//	dist <= backoff          Backoff
//	backoff < dist <= min    Buffer
//	min < dist < chase       Chase
//	otherwise                Idle
func Classify(dist float64, p AIParams) AIState {
	switch {
	case dist <= p.BackoffDistance:
		return StateBackoff
	case dist <= p.MinDistance:
		return StateBuffer
	case dist < p.ChaseRange:
		return StateChase
	}
	return StateIdle
}

// EnemyAI chases a target and keeps a small gap to it. Target defaults to
// the session's player when nil. The state is recomputed every frame from
// the current distance.
type EnemyAI struct {
	ecs.Base
	AIParams
	Session *session.State
	Target  ecs.Handle

	State     AIState
	Direction vmath.Vec2

	transform *Transform
	sprite    *Sprite
	lastAnim  string
	lastFlip  bool
}

func NewEnemyAI(s *session.State, p AIParams) *EnemyAI {
	return &EnemyAI{AIParams: p, Session: s, lastAnim: AnimIdle}
}

func (ai *EnemyAI) Init() error {
	t, ok := ecs.Lookup[*Transform](ai.Owner())
	if !ok {
		return fmt.Errorf("enemy ai: %w", ecs.ErrMissingPrerequisite)
	}
	ai.transform = t
	ai.sprite, _ = ecs.Lookup[*Sprite](ai.Owner())
	if ai.lastAnim == "" {
		ai.lastAnim = AnimIdle
	}
	return nil
}

func (ai *EnemyAI) target() (*Transform, bool) {
	h := ai.Target
	if h.IsNil() && ai.Session != nil {
		h = ai.Session.Player
	}
	e, ok := ai.Owner().Manager().Resolve(h)
	if !ok || !e.IsActive() {
		return nil, false
	}
	return ecs.Lookup[*Transform](e)
}

// Update picks the velocity the Transform integrates next frame. The
// Transform is attached first and moves before this runs, so entering the
// buffer band still finishes the step begun while chasing.
func (ai *EnemyAI) Update(float64) {
	if ai.Session != nil && ai.Session.Blocked() {
		ai.idle()
		return
	}
	target, ok := ai.target()
	if !ok {
		ai.idle()
		return
	}
	delta := target.Center().Sub(ai.transform.Center())
	dist := delta.Len()
	if dist > 0 {
		ai.Direction = delta.Div(dist)
	}
	ai.State = Classify(dist, ai.AIParams)
	switch ai.State {
	case StateIdle:
		ai.idle()
	case StateChase:
		ai.transform.Velocity = Steer(ai.Direction).Scale(ai.MoveSpeed)
		anim, flip := facing(ai.Direction, ai.lastFlip)
		ai.animate(anim, flip)
	case StateBackoff:
		ai.transform.Velocity = Steer(ai.Direction).Scale(-ai.MoveSpeed / 2)
		ai.animate(ai.lastAnim, ai.lastFlip)
	case StateBuffer:
		ai.transform.Velocity = vmath.Vec2{}
	}
}

func (ai *EnemyAI) idle() {
	ai.State = StateIdle
	ai.transform.Velocity = vmath.Vec2{}
	if ai.sprite != nil {
		ai.sprite.Play(AnimIdle)
		ai.sprite.Flip = ai.lastFlip
	}
}

func (ai *EnemyAI) animate(anim string, flip bool) {
	ai.lastAnim, ai.lastFlip = anim, flip
	if ai.sprite != nil {
		ai.sprite.Play(anim)
		ai.sprite.Flip = flip
	}
}
