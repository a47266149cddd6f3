package component

import (
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/media"
	"clue-hunter/internal/vmath"
)

// Animation names.
const (
	AnimIdle     = "idle"
	AnimWalk     = "walk"
	AnimWalkUp   = "walk_up"
	AnimWalkDown = "walk_down"
)

// Animation plays the frames of one texture at a fixed rate.
type Animation struct {
	Texture string
	// FrameTime is seconds per frame; zero holds the first frame.
	FrameTime float64
}

// Sprite draws a texture from the media provider centred on its transform.
type Sprite struct {
	ecs.Base
	Media      media.Provider
	TextureID  string
	Animations map[string]Animation
	Current    string
	Frame      int
	Flip       bool
	// Alpha below one draws dimmed; zero hides the sprite.
	Alpha float64

	elapsed   float64
	transform *Transform
}

// NewSprite creates a sprite showing a single texture.
func NewSprite(p media.Provider, texture string) *Sprite {
	return &Sprite{Media: p, TextureID: texture, Alpha: 1}
}

// NewAnimatedSprite creates a sprite that starts playing AnimIdle.
func NewAnimatedSprite(p media.Provider, anims map[string]Animation) *Sprite {
	return &Sprite{Media: p, Animations: anims, Current: AnimIdle, Alpha: 1}
}

func (s *Sprite) Init() error {
	t, err := ecs.Require(s.Owner(), func() *Transform {
		return NewTransform(vmath.Vec2{}, TileSize, TileSize, 1)
	})
	if err != nil {
		return err
	}
	s.transform = t
	if s.Media == nil {
		s.Media = media.Nop{}
	}
	return nil
}

// Play switches animation, restarting it only when it changes.
func (s *Sprite) Play(name string) {
	if s.Current == name {
		return
	}
	if _, ok := s.Animations[name]; !ok {
		return
	}
	s.Current = name
	s.Frame = 0
	s.elapsed = 0
}

func (s *Sprite) Update(dt float64) {
	anim, ok := s.Animations[s.Current]
	if !ok || anim.FrameTime <= 0 {
		return
	}
	s.elapsed += dt
	for s.elapsed >= anim.FrameTime {
		s.elapsed -= anim.FrameTime
		s.Frame++
	}
}

func (s *Sprite) texture() string {
	if anim, ok := s.Animations[s.Current]; ok {
		return anim.Texture
	}
	return s.TextureID
}

func (s *Sprite) Draw(c ecs.Canvas) {
	if s.Alpha <= 0 {
		return
	}
	tex, ok := s.Media.Texture(s.texture())
	if !ok {
		return
	}
	glyph := tex.Frame(s.Frame, s.Flip)
	if glyph == "" {
		return
	}
	style := tex.Style
	if s.Alpha < 1 {
		style = style.Dim(true)
	}
	c.DrawGlyph(s.transform.Center(), glyph, style)
}
