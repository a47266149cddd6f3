package component

import (
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/media"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Label is a line of UI text in screen cells. A label with OnClick set acts
// as a button.
type Label struct {
	ecs.Base
	Media   media.Provider
	Text    string
	X, Y    int
	Style   tcell.Style
	FontID  string
	Hovered bool
	Clicked bool
	OnClick func()
}

func NewLabel(p media.Provider, text string, x, y int, font string) *Label {
	return &Label{Media: p, Text: text, X: x, Y: y, FontID: font, Style: tcell.StyleDefault}
}

// Width is the text width in terminal cells.
func (l *Label) Width() int { return runewidth.StringWidth(l.Text) }

// Contains reports whether screen cell (x, y) lies on the label.
func (l *Label) Contains(x, y int) bool {
	return y == l.Y && x >= l.X && x < l.X+l.Width()
}

// Hover updates the hover flag from the pointer position.
func (l *Label) Hover(x, y int) { l.Hovered = l.Contains(x, y) }

// Click fires OnClick when (x, y) hits the label.
func (l *Label) Click(x, y int) bool {
	if !l.Contains(x, y) {
		return false
	}
	l.Clicked = true
	if l.OnClick != nil {
		l.OnClick()
	}
	return true
}

func (l *Label) Draw(c ecs.Canvas) {
	style := l.Style
	if l.Media != nil {
		if f, ok := l.Media.Font(l.FontID); ok {
			style = f.Style
		}
	}
	if l.Hovered {
		style = style.Reverse(true)
	}
	c.DrawText(l.X, l.Y, l.Text, style)
}
