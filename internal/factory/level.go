package factory

import (
	"fmt"

	"clue-hunter/assets"
	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/gamemap"
	"clue-hunter/internal/session"
)

// Spawned summarises what SpawnMap created.
type Spawned struct {
	Player  *ecs.Entity
	Clues   int
	Enemies int
	Terrain int
}

// SpawnMap creates tiles, terrain colliders and every spawn of gm. Spawns
// with an unknown enemy archetype are skipped.
func SpawnMap(m *ecs.Manager, s *session.State, gm *gamemap.Map) (Spawned, error) {
	var out Spawned
	for y := 0; y < gm.Height; y++ {
		for x := 0; x < gm.Width; x++ {
			NewTile(m, s, x, y, gm.TileAt(x, y))
			if gm.IsSolid(x, y) {
				NewTerrain(m, x, y)
				out.Terrain++
			}
		}
	}
	for _, sp := range gm.Spawns {
		switch sp.Kind {
		case gamemap.SpawnPlayer:
			if out.Player != nil {
				return out, fmt.Errorf("%w: second player at (%d,%d)", gamemap.ErrBadSpawn, sp.X, sp.Y)
			}
			out.Player = NewPlayer(m, s, sp.X, sp.Y, assets.Player)
		case gamemap.SpawnEnemy:
			if sp.Arg < 0 || sp.Arg >= len(assets.Enemies) {
				continue
			}
			NewEnemy(m, s, sp.X, sp.Y, assets.Enemies[sp.Arg])
			out.Enemies++
		case gamemap.SpawnClue:
			NewObject(m, s, sp.X, sp.Y, component.ObjectClue, sp.Arg)
			out.Clues++
		case gamemap.SpawnMagazine:
			NewObject(m, s, sp.X, sp.Y, component.ObjectMagazine, 0)
		case gamemap.SpawnPotion:
			NewObject(m, s, sp.X, sp.Y, component.ObjectPotion, 0)
		}
	}
	if out.Player == nil {
		return out, fmt.Errorf("%w: map has no player", gamemap.ErrBadSpawn)
	}
	return out, nil
}
