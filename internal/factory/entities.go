// Package factory assembles entities from components. Builders attach the
// transform first since the other components resolve it in Init.
package factory

import (
	"clue-hunter/assets"
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"
)

// Body scale for actors and pickups, relative to a tile. Below one so a
// body fits through one-tile corridors without exact alignment.
const bodyScale = 0.75

const projectileSize = 8.0

// CellOrigin returns the top-left world position that centres a body of the
// given scale on map cell (x, y).
func CellOrigin(x, y int, scale float64) vmath.Vec2 {
	pad := component.TileSize * (1 - scale) / 2
	return vmath.V(float64(x)*component.TileSize+pad, float64(y)*component.TileSize+pad)
}

func animations(name string) map[string]component.Animation {
	const frameTime = 0.18
	out := make(map[string]component.Animation, len(assets.AnimSuffixes))
	for _, suffix := range assets.AnimSuffixes {
		out[suffix] = component.Animation{Texture: name + "_" + suffix, FrameTime: frameTime}
	}
	return out
}

func body(m *ecs.Manager, pos vmath.Vec2, scale float64) *ecs.Entity {
	e := m.AddEntity()
	ecs.MustAdd(e, component.NewTransform(pos, component.TileSize, component.TileSize, scale))
	return e
}

// NewPlayer creates the player on map cell (x, y) and makes it the session
// player.
func NewPlayer(m *ecs.Manager, s *session.State, x, y int, def assets.PlayerDef) *ecs.Entity {
	e := body(m, CellOrigin(x, y, bodyScale), bodyScale)
	ecs.MustAdd(e, component.NewAnimatedSprite(s.Media, animations(def.Name)))
	ecs.MustAdd(e, component.NewCollider("player"))
	ecs.MustAdd(e, component.NewHealth(def.MaxHP, def.HitCooldown))
	ecs.MustAdd(e, component.NewAmmo(def.Ammo, def.MaxAmmo, def.PerMagazine))
	ecs.MustAdd(e, component.NewController(s, def.Speed))
	e.AddGroup(component.GroupPlayers)
	s.Player = e.Handle()
	return e
}

// NewEnemy creates an enemy of archetype def on map cell (x, y).
func NewEnemy(m *ecs.Manager, s *session.State, x, y int, def assets.EnemyDef) *ecs.Entity {
	e := body(m, CellOrigin(x, y, bodyScale), bodyScale)
	ecs.MustAdd(e, component.NewAnimatedSprite(s.Media, animations(def.Name)))
	ecs.MustAdd(e, component.NewCollider("enemy"))
	ecs.MustAdd(e, component.NewHealth(def.MaxHP, 0))
	ecs.MustAdd(e, component.NewEnemyAI(s, component.AIParams{
		ChaseRange:      def.ChaseRange,
		MinDistance:     def.MinDistance,
		BackoffDistance: def.BackoffDistance,
		MoveSpeed:       def.Speed,
	}))
	e.AddGroup(component.GroupEnemies)
	return e
}

// NewProjectile creates a shot centred on origin flying along dir.
func NewProjectile(m *ecs.Manager, s *session.State, origin, dir vmath.Vec2, w assets.WeaponDef) *ecs.Entity {
	e := m.AddEntity()
	half := projectileSize / 2
	ecs.MustAdd(e, component.NewTransform(origin.Sub(vmath.V(half, half)), projectileSize, projectileSize, 1))
	ecs.MustAdd(e, component.NewSprite(s.Media, assets.TexBullet))
	ecs.MustAdd(e, component.NewCollider("projectile"))
	ecs.MustAdd(e, &component.Projectile{
		Range:     w.Range,
		Speed:     w.Speed,
		Direction: dir,
		Damage:    w.Damage,
	})
	e.AddGroup(component.GroupProjectiles)
	return e
}

// Shooter returns a projectile spawner for the shooting system.
func Shooter(s *session.State, w assets.WeaponDef) func(*ecs.Manager, vmath.Vec2, vmath.Vec2) *ecs.Entity {
	return func(m *ecs.Manager, origin, dir vmath.Vec2) *ecs.Entity {
		return NewProjectile(m, s, origin, dir, w)
	}
}

var objectTextures = map[component.ObjectKind]string{
	component.ObjectClue:     assets.TexClue,
	component.ObjectMagazine: assets.TexMagazine,
	component.ObjectPotion:   assets.TexPotion,
}

// NewObject creates a pickup on map cell (x, y). question is only used by
// clues.
func NewObject(m *ecs.Manager, s *session.State, x, y int, kind component.ObjectKind, question int) *ecs.Entity {
	e := body(m, CellOrigin(x, y, bodyScale), bodyScale)
	sprite := component.NewAnimatedSprite(s.Media, map[string]component.Animation{
		component.AnimIdle: {Texture: objectTextures[kind], FrameTime: 0.5},
	})
	ecs.MustAdd(e, sprite)
	ecs.MustAdd(e, component.NewCollider(kind.String()))
	ecs.MustAdd(e, &component.Object{Kind: kind, Question: question})
	e.AddGroup(component.GroupObjects)
	return e
}

// NewTile creates the visual for map cell (x, y).
func NewTile(m *ecs.Manager, s *session.State, x, y, tile int) *ecs.Entity {
	e := body(m, CellOrigin(x, y, 1), 1)
	ecs.MustAdd(e, component.NewAnimatedSprite(s.Media, map[string]component.Animation{
		component.AnimIdle: {Texture: assets.TileTextures[tile], FrameTime: 0.8},
	}))
	e.AddGroup(component.GroupMap)
	return e
}

// NewTerrain creates the collider for a solid map cell, sized to the tile.
func NewTerrain(m *ecs.Manager, x, y int) *ecs.Entity {
	e := body(m, CellOrigin(x, y, 1), 1)
	ecs.MustAdd(e, component.NewCollider("terrain"))
	e.AddGroup(component.GroupColliders)
	return e
}

// NewLabel creates a UI label at screen cell (x, y).
func NewLabel(m *ecs.Manager, s *session.State, text string, x, y int, font string) *component.Label {
	e := m.AddEntity()
	l := ecs.MustAdd(e, component.NewLabel(s.Media, text, x, y, font))
	e.AddGroup(component.GroupUI)
	return l
}
