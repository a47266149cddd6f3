// Package render draws the manager's entities and the HUD onto a tcell
// screen. Renderer is the ecs.Canvas components draw through.
package render

import (
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the height of the status area under the map.
const HUDRows = 4

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize re-reads the screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 1)
}

func (r *Renderer) Camera() *Camera { return r.camera }

// Size returns the screen size in cells.
func (r *Renderer) Size() (int, int) { return r.screen.Size() }

// DrawGlyph draws glyph centred on world position pos. Glyphs that do not
// fit the viewport entirely are skipped.
func (r *Renderer) DrawGlyph(pos vmath.Vec2, glyph string, style tcell.Style) {
	width := runewidth.StringWidth(glyph)
	if width == 0 {
		return
	}
	sx, sy, visible := r.camera.WorldToScreen(pos, width)
	if !visible {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// DrawText draws text starting at screen cell (x, y).
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
}

// Frame renders one complete frame. world is the map size in pixels.
func (r *Renderer) Frame(m *ecs.Manager, s *session.State, world vmath.Vec2) {
	r.screen.Clear()
	if p, ok := m.Resolve(s.Player); ok {
		if t, ok := ecs.Lookup[*component.Transform](p); ok {
			r.camera.Center(t.Center())
		}
	}
	r.camera.Clamp(world)

	for _, g := range component.DrawOrder {
		if g == component.GroupUI && s.Modal == session.ModalQuiz {
			r.drawPanel(m.Group(g))
		}
		m.DrawGroup(g, r)
	}
	r.DrawHUD(m, s)
	r.drawBanner(s)
	r.screen.Show()
}

// drawPanel fills the box around the active labels.
func (r *Renderer) drawPanel(ui []*ecs.Entity) {
	x0, y0, x1, y1 := 1<<30, 1<<30, -1, -1
	for _, e := range ui {
		l, ok := ecs.Lookup[*component.Label](e)
		if !ok || !e.IsActive() {
			continue
		}
		x0, y0 = min(x0, l.X), min(y0, l.Y)
		x1, y1 = max(x1, l.X+l.Width()), max(y1, l.Y)
	}
	if x1 < 0 {
		return
	}
	for y := y0 - 1; y <= y1+1; y++ {
		for x := x0 - 2; x < x1+2; x++ {
			r.screen.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
