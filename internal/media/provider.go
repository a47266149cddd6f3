// Package media resolves asset IDs to textures, fonts and sounds. Lookups of
// unknown IDs never fail loudly: textures come back absent and sounds are
// silently skipped.
package media

import "github.com/gdamore/tcell/v2"

// Texture is a terminal sprite sheet: one glyph per animation frame.
type Texture struct {
	Frames []string
	// Flipped holds mirrored frames. When empty the regular frames are used.
	Flipped []string
	Style   tcell.Style
}

// Frame returns frame i (wrapping), mirrored when flip is set.
func (t Texture) Frame(i int, flip bool) string {
	frames := t.Frames
	if flip && len(t.Flipped) > 0 {
		frames = t.Flipped
	}
	if len(frames) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return frames[i%len(frames)]
}

// Font is a text style.
type Font struct {
	Style tcell.Style
}

// Provider is the asset interface the game core talks to.
type Provider interface {
	Texture(id string) (Texture, bool)
	Font(id string) (Font, bool)
	PlaySound(id string, volume float64)
	PlayMusic(id string, volume float64, loops int)
	StopMusic()
}

// Nop provides nothing.
type Nop struct{}

func (Nop) Texture(string) (Texture, bool) { return Texture{}, false }
func (Nop) Font(string) (Font, bool) { return Font{}, false }
func (Nop) PlaySound(string, float64) {}
func (Nop) PlayMusic(string, float64, int) {}
func (Nop) StopMusic() {}
