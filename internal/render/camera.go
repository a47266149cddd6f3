package render

import (
	"math"

	"clue-hunter/internal/component"
	"clue-hunter/internal/vmath"
)

// A tile spans two terminal columns and one row, room for one wide glyph.
const (
	CellWidth  = component.TileSize / 2
	CellHeight = component.TileSize
)

// Camera translates between world pixels and screen cells.
type Camera struct {
	// Offset is the world position shown at the top-left cell.
	Offset     vmath.Vec2
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// viewSize is the viewport in world pixels.
func (c *Camera) viewSize() vmath.Vec2 {
	return vmath.V(float64(c.ViewWidth)*CellWidth, float64(c.ViewHeight)*CellHeight)
}

// Center puts world position p in the middle of the view.
func (c *Camera) Center(p vmath.Vec2) {
	c.Offset = p.Sub(c.viewSize().Scale(0.5))
}

// Clamp keeps the view inside a world of the given size. A world smaller
// than the view is centred.
func (c *Camera) Clamp(world vmath.Vec2) {
	view := c.viewSize()
	c.Offset.X = clampAxis(c.Offset.X, view.X, world.X)
	c.Offset.Y = clampAxis(c.Offset.Y, view.Y, world.Y)
}

func clampAxis(off, view, world float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	return math.Max(0, math.Min(off, world-view))
}

// WorldToScreen returns the cell of the leftmost column of a glyph that is
// width columns wide and centred on p. visible is false when any part falls
// outside the viewport.
func (c *Camera) WorldToScreen(p vmath.Vec2, width int) (sx, sy int, visible bool) {
	rel := p.Sub(c.Offset)
	sx = int(math.Floor(rel.X/CellWidth - float64(width)/2 + 0.5))
	sy = int(math.Floor(rel.Y / CellHeight))
	visible = sx >= 0 && sx+width <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the world position at the centre of cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) vmath.Vec2 {
	return c.Offset.Add(vmath.V((float64(sx)+0.5)*CellWidth, (float64(sy)+0.5)*CellHeight))
}
