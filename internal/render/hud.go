package render

import (
	"fmt"
	"strings"

	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const hpBarWidth = 10

// DrawHUD renders the status line and the newest messages under the map.
func (r *Renderer) DrawHUD(m *ecs.Manager, s *session.State) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows
	theme := ThemeFor(s.Level)

	r.drawHLine(hudY, theme.Border)

	col := 0
	if p, ok := m.Resolve(s.Player); ok {
		if h, ok := ecs.Lookup[*component.Health](p); ok {
			full, empty := hpBar(h.Current, h.Max, hpBarWidth)
			col = r.drawSpan(col, hudY+1, "HP ", styleHUD)
			col = r.drawSpan(col, hudY+1, strings.Repeat("█", full), styleHPFull)
			col = r.drawSpan(col, hudY+1, strings.Repeat("░", empty), styleHPEmpty)
			col = r.drawSpan(col, hudY+1, fmt.Sprintf(" %d/%d  ", max(h.Current, 0), h.Max), styleHUD)
		}
		if a, ok := ecs.Lookup[*component.Ammo](p); ok {
			col = r.drawSpan(col, hudY+1, fmt.Sprintf("Ammo %d/%d  ", a.Current, a.Max), styleHUD)
		}
	}
	status := fmt.Sprintf("Clues %d/%d  Kills %d  ", s.CluesAnswered, s.CluesTotal, s.Kills)
	col = r.drawSpan(col, hudY+1, status, styleHUD)
	r.drawSpan(col, hudY+1, fmt.Sprintf("Level %d: %s", s.Level, theme.Name),
		tcell.StyleDefault.Foreground(theme.Accent))

	msgs := s.Messages()
	start := max(len(msgs)-(HUDRows-2), 0)
	for i, msg := range msgs[start:] {
		r.DrawText(0, hudY+2+i, msg.Text, styleMessage)
	}
}

// hpBar splits width cells into filled and empty parts.
func hpBar(cur, limit, width int) (full, empty int) {
	if limit <= 0 {
		return 0, width
	}
	cur = max(min(cur, limit), 0)
	full = (cur*width + limit - 1) / limit
	return full, width - full
}

var banners = map[session.Modal]string{
	session.ModalPaused:     " PAUSED  (p to resume) ",
	session.ModalTransition: " LEVEL COMPLETE ",
	session.ModalGameOver:   " GAME OVER  (r to restart, q to quit) ",
	session.ModalVictory:    " ALL CASES SOLVED!  (r to play again, q to quit) ",
}

func (r *Renderer) drawBanner(s *session.State) {
	text, ok := banners[s.Modal]
	if !ok {
		return
	}
	w, _ := r.screen.Size()
	x := max((w-runewidth.StringWidth(text))/2, 0)
	r.DrawText(x, r.camera.ViewHeight/2, text, styleBanner)
}

func (r *Renderer) drawSpan(x, y int, text string, style tcell.Style) int {
	r.DrawText(x, y, text, style)
	return x + runewidth.StringWidth(text)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
