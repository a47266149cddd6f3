package component

import (
	"fmt"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/vmath"
)

// Projectile flies in a straight line and destroys its entity after Range
// pixels.
type Projectile struct {
	ecs.Base
	Range     float64
	Speed     float64
	Direction vmath.Vec2
	Damage    int
	Travelled float64

	transform *Transform
}

func (p *Projectile) Init() error {
	t, ok := ecs.Lookup[*Transform](p.Owner())
	if !ok {
		return fmt.Errorf("projectile: %w", ecs.ErrMissingPrerequisite)
	}
	p.transform = t
	p.Direction = p.Direction.Normalize()
	t.Velocity = p.Direction.Scale(p.Speed)
	return nil
}

func (p *Projectile) Update(dt float64) {
	p.Travelled += p.Speed * dt
	if p.Travelled >= p.Range {
		p.Owner().Destroy()
	}
}
