// Package generate builds levels procedurally: BSP rooms joined by
// corridors, then spawn markers for the player, enemies and pickups.
package generate

import (
	"math/rand"

	"clue-hunter/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	CorridorWidth       int // cells; 0 means 1

	// EnemyCosts is the threat cost of each enemy archetype; the spawn Arg
	// is the archetype index.
	EnemyCosts  []int
	EnemyBudget int
	Clues       int
	Questions   int // size of the question pool clues draw from
	Magazines   int
	Potions     int

	Rand *rand.Rand
}

// splitChance is the odds that a leaf already under MaxLeafSize splits again.
const splitChance = 0.75

// leaf is a node of the BSP tree. A node either has two kids or none.
type leaf struct {
	x, y, w, h int
	kids       [2]*leaf
	room       *gamemap.Rect
}

func (l *leaf) terminal() bool { return l.kids[0] == nil }

// horizontal picks the cut direction: across the long side when the leaf
// is clearly elongated, otherwise at random.
func (l *leaf) horizontal(rng *rand.Rand) bool {
	switch {
	case l.w*4 >= l.h*5:
		return false
	case l.h*4 >= l.w*5:
		return true
	}
	return rng.Intn(2) == 0
}

// cut splits l in two. It reports false when either half would drop under
// MinLeafSize.
func (l *leaf) cut(cfg *Config) bool {
	if !l.terminal() {
		return false
	}
	horiz := l.horizontal(cfg.Rand)
	span := l.w
	if horiz {
		span = l.h
	}
	lo, hi := cfg.MinLeafSize, span-cfg.MinLeafSize
	if span <= 2*cfg.MinLeafSize || lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if horiz {
		l.kids = [2]*leaf{
			{x: l.x, y: l.y, w: l.w, h: at},
			{x: l.x, y: l.y + at, w: l.w, h: l.h - at},
		}
	} else {
		l.kids = [2]*leaf{
			{x: l.x, y: l.y, w: at, h: l.h},
			{x: l.x + at, y: l.y, w: l.w - at, h: l.h},
		}
	}
	return true
}

// partition cuts leaves depth first until none can or wants to split.
func partition(root *leaf, cfg *Config) {
	stack := []*leaf{root}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		oversized := l.w > cfg.MaxLeafSize || l.h > cfg.MaxLeafSize
		if !oversized && cfg.Rand.Float64() >= splitChance {
			continue
		}
		if l.cut(cfg) {
			stack = append(stack, l.kids[1], l.kids[0])
		}
	}
}

// placeRoom carves a room inside a terminal leaf, keeping the map border
// solid. Leaves too cramped for a 3x3 room stay empty.
func placeRoom(l *leaf, m *gamemap.Map, cfg *Config) {
	pad, minSize := cfg.RoomPadding, cfg.MinRoomSize
	innerW, innerH := l.w-2*pad, l.h-2*pad

	w := minSize + cfg.Rand.Intn(max(1, max(innerW, minSize)-minSize+1))
	h := minSize + cfg.Rand.Intn(max(1, max(innerH, minSize)-minSize+1))
	w, h = max(min(w, innerW), 3), max(min(h, innerH), 3)

	x := max(l.x+pad+cfg.Rand.Intn(max(1, innerW-w+1)), 1)
	y := max(l.y+pad+cfg.Rand.Intn(max(1, innerH-h+1)), 1)
	w = min(w, m.Width-1-x)
	h = min(h, m.Height-1-y)
	if w < 3 || h < 3 {
		return
	}

	r := gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
	for cy := r.Y1; cy <= r.Y2; cy++ {
		for cx := r.X1; cx <= r.X2; cx++ {
			m.Carve(cx, cy)
		}
	}
	l.room = &r
	m.Rooms = append(m.Rooms, r)
}

func furnish(l *leaf, m *gamemap.Map, cfg *Config) {
	if l.terminal() {
		placeRoom(l, m, cfg)
		return
	}
	furnish(l.kids[0], m, cfg)
	furnish(l.kids[1], m, cfg)
}

// anyRoom returns the first room found under l, or nil.
func anyRoom(l *leaf) *gamemap.Rect {
	if l == nil {
		return nil
	}
	if l.room != nil {
		return l.room
	}
	if r := anyRoom(l.kids[0]); r != nil {
		return r
	}
	return anyRoom(l.kids[1])
}

// join links sibling subtrees bottom up, so every room ends up reachable.
func join(l *leaf, m *gamemap.Map, cfg *Config) {
	if l.terminal() {
		return
	}
	join(l.kids[0], m, cfg)
	join(l.kids[1], m, cfg)

	a, b := anyRoom(l.kids[0]), anyRoom(l.kids[1])
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(m, ax, ay, bx, by, cfg)
}

// Generate runs BSP generation and returns a map whose only spawn is the
// player, at the center of the first room.
func Generate(cfg *Config) *gamemap.Map {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	root := &leaf{w: cfg.MapWidth, h: cfg.MapHeight}
	partition(root, cfg)
	furnish(root, m, cfg)
	join(root, m, cfg)

	px, py := 1, 1
	if len(m.Rooms) > 0 {
		px, py = m.Rooms[0].Center()
	} else {
		m.Carve(px, py)
	}
	m.Spawns = append(m.Spawns, gamemap.Spawn{Kind: gamemap.SpawnPlayer, X: px, Y: py})
	return m
}

// Build generates a map and populates it.
func Build(cfg *Config) *gamemap.Map {
	m := Generate(cfg)
	m.Spawns = append(m.Spawns, Populate(m, cfg)...)
	return m
}
