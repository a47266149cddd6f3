package assets

import (
	"clue-hunter/internal/media"

	"github.com/gdamore/tcell/v2"
)

// Animation suffixes appended to an actor name to form texture IDs.
var AnimSuffixes = []string{"idle", "walk", "walk_up", "walk_down"}

// PlayerDef describes the player.
type PlayerDef struct {
	Name        string
	MaxHP       int
	Speed       float64 // px/s
	Ammo        int
	MaxAmmo     int
	PerMagazine int
	// HitCooldown is the seconds between two enemy contact hits.
	HitCooldown float64
}

// EnemyDef describes an enemy archetype.
type EnemyDef struct {
	Name            string
	MaxHP           int
	Speed           float64
	ChaseRange      float64
	MinDistance     float64
	BackoffDistance float64
	// Cost is the threat budget the populator spends on this archetype.
	Cost int
}

// WeaponDef describes the player's projectiles.
type WeaponDef struct {
	Speed  float64
	Range  float64
	Damage int
}

var Player = PlayerDef{
	Name:        "player",
	MaxHP:       10,
	Speed:       140,
	Ammo:        12,
	MaxAmmo:     30,
	PerMagazine: 6,
	HitCooldown: 0.3,
}

var Pistol = WeaponDef{Speed: 420, Range: 320, Damage: 1}

// Enemies is indexed by the archetype number stored in enemy spawns.
var Enemies = []EnemyDef{
	{Name: "zombie", MaxHP: 3, Speed: 45, ChaseRange: 220, MinDistance: 30, BackoffDistance: 26, Cost: 1},
	{Name: "bat", MaxHP: 1, Speed: 110, ChaseRange: 260, MinDistance: 40, BackoffDistance: 34, Cost: 1},
	{Name: "wolf", MaxHP: 2, Speed: 90, ChaseRange: 300, MinDistance: 36, BackoffDistance: 31, Cost: 2},
	{Name: "ogre", MaxHP: 6, Speed: 55, ChaseRange: 240, MinDistance: 34, BackoffDistance: 29, Cost: 3},
}

// EnemyCosts returns the cost of every archetype in Enemies order.
func EnemyCosts() []int {
	out := make([]int, len(Enemies))
	for i, e := range Enemies {
		out[i] = e.Cost
	}
	return out
}

// actorFrames lists the idle, walk, walk-up and walk-down frames per actor.
var actorFrames = map[string][4][]string{
	"player": {{"🧍"}, {"🚶", "🧍"}, {"🚶", "🧍"}, {"🚶", "🧍"}},
	"zombie": {{"🧟"}, {"🧟", "🧟"}, {"🧟"}, {"🧟"}},
	"bat":    {{"🦇"}, {"🦇", "🪶"}, {"🦇"}, {"🦇"}},
	"wolf":   {{"🐺"}, {"🐺", "🐾"}, {"🐺"}, {"🐺"}},
	"ogre":   {{"👹"}, {"👹", "👺"}, {"👹"}, {"👹"}},
}

var actorColors = map[string]tcell.Color{
	"player": tcell.ColorYellow,
	"zombie": tcell.ColorOliveDrab,
	"bat":    tcell.ColorPurple,
	"wolf":   tcell.ColorGray,
	"ogre":   tcell.ColorRed,
}

type actorTexture struct {
	id  string
	tex media.Texture
}

func actorTextures() []actorTexture {
	var out []actorTexture
	for name, frames := range actorFrames {
		for i, suffix := range AnimSuffixes {
			out = append(out, actorTexture{
				id:  name + "_" + suffix,
				tex: media.Texture{Frames: frames[i], Style: style(actorColors[name])},
			})
		}
	}
	return out
}
