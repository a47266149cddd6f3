package generate

import (
	"clue-hunter/internal/gamemap"
	"clue-hunter/internal/vmath"
)

// Populate returns spawn markers for enemies, clues, magazines and potions.
// The first room is kept for the player; everything else is spread over the
// remaining rooms, never two markers on one cell.
func Populate(m *gamemap.Map, cfg *Config) []gamemap.Spawn {
	rooms := m.Rooms
	if len(rooms) == 0 {
		return nil
	}
	placeable := rooms
	if len(rooms) > 1 {
		placeable = rooms[1:]
	}

	var occupied vmath.Set
	for _, s := range m.Spawns {
		occupied.Insert(cell(s.X, s.Y))
	}
	var out []gamemap.Spawn
	place := func(kind gamemap.SpawnKind, room gamemap.Rect, arg int) {
		x, y := pickFreeInRoom(room, cfg, &occupied)
		occupied.Insert(cell(x, y))
		out = append(out, gamemap.Spawn{Kind: kind, X: x, Y: y, Arg: arg})
	}

	// Clues go to distinct rooms first, wrapping when there are more clues
	// than rooms. Questions are drawn without replacement.
	order := cfg.Rand.Perm(len(placeable))
	questions := cfg.Rand.Perm(max(cfg.Questions, 1))
	for i := range cfg.Clues {
		room := placeable[order[i%len(order)]]
		place(gamemap.SpawnClue, room, questions[i%len(questions)])
	}

	// One enemy in every placeable room while the budget allows, then the
	// remaining budget on random rooms.
	budget := cfg.EnemyBudget
	if len(cfg.EnemyCosts) > 0 {
		for _, room := range placeable {
			kind, ok := cheapest(cfg.EnemyCosts, budget)
			if !ok {
				break
			}
			place(gamemap.SpawnEnemy, room, kind)
			budget -= cfg.EnemyCosts[kind]
		}
		for budget > 0 {
			aff := affordable(cfg.EnemyCosts, budget)
			if len(aff) == 0 {
				break
			}
			kind := aff[cfg.Rand.Intn(len(aff))]
			place(gamemap.SpawnEnemy, placeable[cfg.Rand.Intn(len(placeable))], kind)
			budget -= cfg.EnemyCosts[kind]
		}
	}

	for range cfg.Magazines {
		place(gamemap.SpawnMagazine, rooms[cfg.Rand.Intn(len(rooms))], 0)
	}
	for range cfg.Potions {
		place(gamemap.SpawnPotion, rooms[cfg.Rand.Intn(len(rooms))], 0)
	}
	return out
}

func cell(x, y int) vmath.Vec2 { return vmath.V(float64(x), float64(y)) }

// affordable returns the archetype indices whose cost fits budget.
func affordable(costs []int, budget int) []int {
	var out []int
	for i, c := range costs {
		if c > 0 && c <= budget {
			out = append(out, i)
		}
	}
	return out
}

// cheapest returns the lowest-cost archetype that fits budget.
func cheapest(costs []int, budget int) (int, bool) {
	best, found := 0, false
	for _, i := range affordable(costs, budget) {
		if !found || costs[i] < costs[best] {
			best, found = i, true
		}
	}
	return best, found
}

// pickFreeInRoom tries up to 20 times to find an unoccupied cell inside
// room, then falls back to any cell so crowded rooms cannot loop forever.
func pickFreeInRoom(room gamemap.Rect, cfg *Config, occupied *vmath.Set) (int, int) {
	const maxAttempts = 20
	for range maxAttempts {
		x, y := randomInRoom(room, cfg)
		if !occupied.Contains(cell(x, y)) {
			return x, y
		}
	}
	return randomInRoom(room, cfg)
}

func randomInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	// Stay off the outer ring so nothing blocks a corridor mouth.
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X1, room.Y1
		x2, y2 = room.X2, room.Y2
	}
	x := x1 + cfg.Rand.Intn(max(1, x2-x1+1))
	y := y1 + cfg.Rand.Intn(max(1, y2-y1+1))
	return x, y
}
