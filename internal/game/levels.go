package game

import (
	"fmt"
	"math"
	"math/rand"

	"clue-hunter/assets"
	"clue-hunter/internal/gamemap"
	"clue-hunter/internal/generate"
)

// levelConfig builds a generate.Config for the given generated level,
// counted from 1. Difficulty ramps linearly up to the last one.
func levelConfig(n, total int, rng *rand.Rand) *generate.Config {
	t := 0.0
	if total > 1 {
		t = math.Min(float64(n-1)/float64(total-1), 1)
	}

	return &generate.Config{
		MapWidth:      lerpi(36, 60, t),
		MapHeight:     lerpi(20, 32, t),
		MinLeafSize:   7,
		MaxLeafSize:   lerpi(16, 11, t),
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: generate.CorridorStyle(rng.Intn(3)),
		CorridorWidth: lerpi(2, 1, t),
		EnemyCosts:    assets.EnemyCosts(),
		EnemyBudget:   lerpi(6, 18, t),
		Clues:         lerpi(3, 5, t),
		Questions:     len(assets.Questions),
		Magazines:     lerpi(2, 4, t),
		Potions:       lerpi(2, 3, t),
		Rand:          rng,
	}
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}

// levelMap returns the map of a 1-based level: authored levels first, then
// generated ones.
func (g *Game) levelMap(level int) (*gamemap.Map, error) {
	if level < 1 {
		return nil, fmt.Errorf("level %d: levels start at 1", level)
	}
	if level <= len(assets.Levels) {
		m, err := gamemap.ParseString(assets.Levels[level-1])
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		return m, nil
	}
	n := level - len(assets.Levels)
	return generate.Build(levelConfig(n, g.cfg.GeneratedLevels, g.rng)), nil
}

// lastLevel is the level after which the game is won.
func (g *Game) lastLevel() int {
	return len(assets.Levels) + g.cfg.GeneratedLevels
}
