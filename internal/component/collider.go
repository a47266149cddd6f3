package component

import (
	"fmt"

	"clue-hunter/internal/ecs"
)

// Rect is an axis-aligned box: top-left corner plus size.
type Rect struct {
	X, Y, W, H float64
}

// Collider tags an entity for collision rules and mirrors its transform's
// bounds.
type Collider struct {
	ecs.Base
	Tag  string
	Rect Rect

	transform *Transform
}

func NewCollider(tag string) *Collider { return &Collider{Tag: tag} }

func (c *Collider) Init() error {
	t, ok := ecs.Lookup[*Transform](c.Owner())
	if !ok {
		return fmt.Errorf("collider %q needs a transform: %w", c.Tag, ecs.ErrMissingPrerequisite)
	}
	c.transform = t
	c.Sync()
	return nil
}

func (c *Collider) Update(float64) { c.Sync() }

// Sync copies the transform bounds into Rect.
func (c *Collider) Sync() { c.Rect = c.transform.Bounds() }
