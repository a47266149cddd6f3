package component

import (
	"fmt"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"
)

// Controller turns held keys into player velocity.
type Controller struct {
	ecs.Base
	Session *session.State
	Speed   float64
	// Facing is the last movement direction, unit length. Shots go this way.
	Facing vmath.Vec2

	transform *Transform
	sprite    *Sprite
}

func NewController(s *session.State, speed float64) *Controller {
	return &Controller{Session: s, Speed: speed, Facing: vmath.V(1, 0)}
}

func (c *Controller) Init() error {
	t, ok := ecs.Lookup[*Transform](c.Owner())
	if !ok {
		return fmt.Errorf("controller: %w", ecs.ErrMissingPrerequisite)
	}
	c.transform = t
	c.sprite, _ = ecs.Lookup[*Sprite](c.Owner())
	if c.Facing.IsZero() {
		c.Facing = vmath.V(1, 0)
	}
	return nil
}

func (c *Controller) Update(float64) {
	if c.Session.Blocked() {
		c.stop()
		return
	}
	dx, dy := c.Session.Input.Axis(c.Session.Now())
	dir := vmath.V(dx, dy)
	if dir.IsZero() {
		c.stop()
		return
	}
	if dx != 0 && dy != 0 {
		dir = dir.Scale(vmath.InvSqrt2)
	}
	c.Facing = dir
	c.transform.Velocity = dir.Scale(c.Speed)
	if c.sprite != nil {
		anim, flip := facing(dir, c.sprite.Flip)
		c.sprite.Play(anim)
		c.sprite.Flip = flip
	}
}

func (c *Controller) stop() {
	c.transform.Velocity = vmath.Vec2{}
	if c.sprite != nil {
		c.sprite.Play(AnimIdle)
	}
}
