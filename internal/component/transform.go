package component

import (
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/vmath"
)

// Transform is position, motion and size in world pixels. Position is the
// top-left corner; Velocity is in pixels per second.
type Transform struct {
	ecs.Base
	Position vmath.Vec2
	Previous vmath.Vec2
	Velocity vmath.Vec2
	Width    float64
	Height   float64
	Scale    float64
}

// NewTransform creates a transform at pos with the given unscaled size.
func NewTransform(pos vmath.Vec2, w, h, scale float64) *Transform {
	return &Transform{Position: pos, Width: w, Height: h, Scale: scale}
}

func (t *Transform) Init() error {
	if t.Scale == 0 {
		t.Scale = 1
	}
	t.Previous = t.Position
	return nil
}

// Update remembers the current position, then integrates velocity.
func (t *Transform) Update(dt float64) {
	t.Previous = t.Position
	t.Position = t.Position.Add(t.Velocity.Scale(dt))
}

// Size returns the scaled width and height.
func (t *Transform) Size() vmath.Vec2 {
	return vmath.V(t.Width*t.Scale, t.Height*t.Scale)
}

func (t *Transform) Center() vmath.Vec2 {
	return t.Position.Add(t.Size().Scale(0.5))
}

// Bounds returns the scaled rectangle covered by the transform.
func (t *Transform) Bounds() Rect {
	s := t.Size()
	return Rect{X: t.Position.X, Y: t.Position.Y, W: s.X, H: s.Y}
}

// SnapBack restores the position from before the last Update.
func (t *Transform) SnapBack() {
	t.Position = t.Previous
}
