// Package component holds the gameplay components. Each embeds ecs.Base and
// resolves its sibling components in Init, so attachment order matters:
// Transform always comes first.
package component

import "clue-hunter/internal/ecs"

// Entity groups.
const (
	GroupMap ecs.Group = iota
	GroupPlayers
	GroupEnemies
	GroupColliders // terrain
	GroupProjectiles
	GroupObjects
	GroupUI
)

// DrawOrder lists groups back to front.
var DrawOrder = []ecs.Group{
	GroupMap,
	GroupPlayers,
	GroupEnemies,
	GroupObjects,
	GroupProjectiles,
	GroupUI,
}

// RegisterAll assigns type IDs to every component up front so a capacity
// problem shows at startup instead of mid-game.
func RegisterAll() error {
	for _, reg := range []func() (ecs.ComponentID, error){
		ecs.Register[*Transform],
		ecs.Register[*Sprite],
		ecs.Register[*Collider],
		ecs.Register[*Health],
		ecs.Register[*Ammo],
		ecs.Register[*Projectile],
		ecs.Register[*EnemyAI],
		ecs.Register[*Controller],
		ecs.Register[*Label],
		ecs.Register[*Object],
	} {
		if _, err := reg(); err != nil {
			return err
		}
	}
	return nil
}

// TileSize is the edge of one map tile in world pixels.
const TileSize = 32.0
