package component

import (
	"errors"
	"math"
	"testing"
	"time"

	"clue-hunter/internal/ecs"
	"clue-hunter/internal/media"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = AIParams{ChaseRange: 250, MinDistance: 50, BackoffDistance: 45, MoveSpeed: 100}

func newState() (*session.State, *session.ManualClock) {
	clock := session.NewManualClock()
	return session.New(clock, nil), clock
}

func addBody(m *ecs.Manager, x, y float64) (*ecs.Entity, *Transform) {
	e := m.AddEntity()
	t := ecs.MustAdd(e, NewTransform(vmath.V(x, y), TileSize, TileSize, 1))
	return e, t
}

// world places an enemy at the origin and the player at (px, py).
func world(t *testing.T, px, py float64) (*ecs.Manager, *session.State, *EnemyAI, *Transform) {
	t.Helper()
	m := ecs.NewManager()
	s, _ := newState()
	enemy, et := addBody(m, 0, 0)
	ai := ecs.MustAdd(enemy, NewEnemyAI(s, testParams))
	player, _ := addBody(m, px, py)
	s.Player = player.Handle()
	return m, s, ai, et
}

func TestRegisterAll(t *testing.T) {
	require.NoError(t, RegisterAll())
	require.NoError(t, RegisterAll())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		dist float64
		want AIState
	}{
		{0, StateBackoff},
		{45, StateBackoff},
		{46, StateBuffer},
		{48, StateBuffer},
		{50, StateBuffer},
		{50.5, StateChase},
		{200, StateChase},
		{249.9, StateChase},
		{250, StateIdle},
		{1000, StateIdle},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.dist, testParams), "dist %v", tc.dist)
	}
}

func TestEnemyChasesWithUnitDirection(t *testing.T) {
	m, _, ai, et := world(t, 200, 0)
	m.Update(0.1)

	assert.Equal(t, StateChase, ai.State)
	assert.InDelta(t, 1.0, ai.Direction.Len(), 1e-3)
	assert.InDelta(t, testParams.MoveSpeed, et.Velocity.X, 1e-9)
	assert.Zero(t, et.Velocity.Y)
}

func TestEnemyChaseDiagonalKeepsSpeed(t *testing.T) {
	d := 200 / math.Sqrt2
	m, _, ai, et := world(t, d, d)
	m.Update(0.1)

	require.Equal(t, StateChase, ai.State)
	assert.InDelta(t, 1.0, ai.Direction.Len(), 1e-3)
	assert.InDelta(t, et.Velocity.X, et.Velocity.Y, 1e-9)
	assert.InDelta(t, testParams.MoveSpeed, et.Velocity.Len(), 1e-9)
}

func TestEnemyHoldsInBufferBand(t *testing.T) {
	m, _, ai, et := world(t, 48, 0)
	start := et.Position

	m.Update(0.1)
	assert.Equal(t, StateBuffer, ai.State)
	assert.Equal(t, start, et.Position)

	m.Update(0.1)
	assert.Equal(t, StateBuffer, ai.State)
	assert.Equal(t, start, et.Position)
}

func TestEnemyStopsAfterChasingIntoBufferBand(t *testing.T) {
	m, _, ai, et := world(t, 54, 0)

	m.Update(0.05)
	require.Equal(t, StateChase, ai.State)
	assert.Equal(t, 0.0, et.Position.X, "velocity applies from the next frame")

	m.Update(0.05)
	require.Equal(t, StateBuffer, ai.State)
	assert.InDelta(t, 5.0, et.Position.X, 1e-9, "the chase step lands")
	assert.Equal(t, vmath.Vec2{}, et.Velocity)
	held := et.Position

	m.Update(0.05)
	assert.Equal(t, StateBuffer, ai.State)
	assert.Equal(t, held, et.Position)
}

func TestEnemyBacksOffAtHalfSpeed(t *testing.T) {
	m, _, ai, et := world(t, 30, 0)
	m.Update(0.1)

	assert.Equal(t, StateBackoff, ai.State)
	assert.InDelta(t, -testParams.MoveSpeed/2, et.Velocity.X, 1e-9)

	m.Update(0.1)
	assert.Less(t, et.Position.X, 0.0)
}

func TestEnemyIdlesWithoutTarget(t *testing.T) {
	m, s, ai, et := world(t, 200, 0)
	player, ok := m.Resolve(s.Player)
	require.True(t, ok)
	player.Destroy()
	m.Refresh()

	m.Update(0.1)
	assert.Equal(t, StateIdle, ai.State)
	assert.True(t, et.Velocity.IsZero())
}

func TestEnemyIdlesDuringModal(t *testing.T) {
	m, s, ai, et := world(t, 200, 0)
	m.Update(0.1)
	require.Equal(t, StateChase, ai.State)

	s.Modal = session.ModalQuiz
	m.Update(0.1)
	assert.Equal(t, StateIdle, ai.State)
	assert.True(t, et.Velocity.IsZero())
}

func TestEnemyAnimationFollowsDominantAxis(t *testing.T) {
	m := ecs.NewManager()
	s, _ := newState()
	enemy, _ := addBody(m, 0, 0)
	sprite := ecs.MustAdd(enemy, NewAnimatedSprite(media.Nop{}, map[string]Animation{
		AnimIdle:     {Texture: "idle"},
		AnimWalk:     {Texture: "walk"},
		AnimWalkUp:   {Texture: "up"},
		AnimWalkDown: {Texture: "down"},
	}))
	ecs.MustAdd(enemy, NewEnemyAI(s, testParams))
	player, pt := addBody(m, -200, 10)
	s.Player = player.Handle()

	m.Update(0.1)
	assert.Equal(t, AnimWalk, sprite.Current)
	assert.True(t, sprite.Flip)

	pt.Position = vmath.V(0, 200)
	m.Update(0.1)
	assert.Equal(t, AnimWalkDown, sprite.Current)
	assert.True(t, sprite.Flip, "vertical movement keeps the last flip")
}

func TestSteer(t *testing.T) {
	assert.Equal(t, vmath.V(1, 0), Steer(vmath.V(0.95, 0.3)))
	assert.Equal(t, vmath.V(0, -1), Steer(vmath.V(0.1, -0.99)))
	d := Steer(vmath.V(-0.7, 0.7))
	assert.InDelta(t, -vmath.InvSqrt2, d.X, 1e-12)
	assert.InDelta(t, vmath.InvSqrt2, d.Y, 1e-12)
}

func TestHealthCooldown(t *testing.T) {
	h := NewHealth(10, 0.3)
	assert.True(t, h.Damage(2))
	assert.False(t, h.Damage(2))
	assert.Equal(t, 8, h.Current)

	h.Update(0.2)
	assert.False(t, h.Damage(2))
	h.Update(0.1)
	assert.True(t, h.Damage(2))
	assert.Equal(t, 6, h.Current)

	h.Heal(100)
	assert.Equal(t, 10, h.Current)

	h.Update(1)
	h.Damage(10)
	assert.True(t, h.Dead())
}

func TestAmmoReloadIsCapped(t *testing.T) {
	a := NewAmmo(8, 10, 5)
	assert.Equal(t, 2, a.Reload())
	assert.Equal(t, 10, a.Current)

	a.Current = 1
	assert.True(t, a.Use())
	assert.False(t, a.Use())
	assert.Equal(t, 0, a.Current)
}

func TestProjectileExpiresAfterRange(t *testing.T) {
	m := ecs.NewManager()
	e, tr := addBody(m, 0, 0)
	p := ecs.MustAdd(e, &Projectile{Range: 100, Speed: 200, Direction: vmath.V(0, 3)})

	assert.Equal(t, vmath.V(0, 200), tr.Velocity)
	m.Update(0.25)
	assert.True(t, e.IsActive())
	m.Update(0.25)
	assert.False(t, e.IsActive())
	assert.InDelta(t, 100, p.Travelled, 1e-9)
}

func TestColliderNeedsTransform(t *testing.T) {
	m := ecs.NewManager()
	e := m.AddEntity()
	_, err := ecs.Add(e, NewCollider("terrain"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrMissingPrerequisite))
	assert.False(t, ecs.Has[*Collider](e))
}

func TestColliderTracksTransform(t *testing.T) {
	m := ecs.NewManager()
	e, tr := addBody(m, 10, 20)
	tr.Scale = 2
	c := ecs.MustAdd(e, NewCollider("player"))
	assert.Equal(t, Rect{X: 10, Y: 20, W: 64, H: 64}, c.Rect)

	tr.Velocity = vmath.V(10, 0)
	m.Update(1)
	assert.Equal(t, 20.0, c.Rect.X)

	tr.SnapBack()
	assert.Equal(t, 10.0, tr.Position.X)
}

func TestSpriteCreatesTransform(t *testing.T) {
	m := ecs.NewManager()
	e := m.AddEntity()
	ecs.MustAdd(e, NewSprite(nil, "wall"))
	assert.True(t, ecs.Has[*Transform](e))
}

func TestSpriteAdvancesFrames(t *testing.T) {
	m := ecs.NewManager()
	e, _ := addBody(m, 0, 0)
	s := ecs.MustAdd(e, NewAnimatedSprite(nil, map[string]Animation{
		AnimIdle: {Texture: "idle", FrameTime: 0.2},
		AnimWalk: {Texture: "walk", FrameTime: 0.1},
	}))
	m.Update(0.5)
	assert.Equal(t, 2, s.Frame)

	s.Play(AnimWalk)
	assert.Equal(t, 0, s.Frame)
	s.Play("missing")
	assert.Equal(t, AnimWalk, s.Current)
}

func TestControllerMovesDiagonally(t *testing.T) {
	m := ecs.NewManager()
	s, clock := newState()
	e, tr := addBody(m, 0, 0)
	c := ecs.MustAdd(e, NewController(s, 120))

	s.Input.Press(session.KeyRight, s.Now())
	s.Input.Press(session.KeyUp, s.Now())
	m.Update(0.01)
	assert.InDelta(t, 120, tr.Velocity.Len(), 1e-9)
	assert.InDelta(t, 1, c.Facing.Len(), 1e-9)
	assert.Less(t, tr.Velocity.Y, 0.0)

	clock.Advance(time.Second)
	m.Update(0.01)
	assert.True(t, tr.Velocity.IsZero())
	assert.Less(t, c.Facing.Y, 0.0, "facing survives the stop")

	s.Input.Press(session.KeyLeft, s.Now())
	s.Modal = session.ModalPaused
	m.Update(0.01)
	assert.True(t, tr.Velocity.IsZero())
}

func TestLabelHitTest(t *testing.T) {
	l := NewLabel(nil, "日本", 4, 2, "")
	assert.Equal(t, 4, l.Width())
	assert.True(t, l.Contains(7, 2))
	assert.False(t, l.Contains(8, 2))
	assert.False(t, l.Contains(5, 3))

	clicks := 0
	l.OnClick = func() { clicks++ }
	assert.False(t, l.Click(0, 0))
	assert.True(t, l.Click(4, 2))
	assert.Equal(t, 1, clicks)
	assert.True(t, l.Clicked)
}

type textCanvas struct{ styles []tcell.Style }

func (*textCanvas) DrawGlyph(vmath.Vec2, string, tcell.Style) {}
func (c *textCanvas) DrawText(_, _ int, _ string, s tcell.Style) {
	c.styles = append(c.styles, s)
}

func TestLabelHoverReverses(t *testing.T) {
	l := NewLabel(nil, "ok", 0, 0, "")
	var c textCanvas
	l.Hover(1, 0)
	l.Draw(&c)
	require.Len(t, c.styles, 1)
	_, _, attrs := c.styles[0].Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)
}
