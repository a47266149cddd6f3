// Package gamemap holds the tile grid of one level and its text format.
package gamemap

// Tile IDs. Any other value is accepted and drawn with the matching
// "tile_<id>" texture when one exists.
const (
	TileFloor = 0
	TileWall  = 1
	TileGrass = 2
	TileWater = 3
	TileDoor  = 4
)

// Rect is an axis-aligned rectangle of cells, inclusive on both ends.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// SpawnKind says what a spawn marker creates.
type SpawnKind uint8

const (
	SpawnPlayer SpawnKind = iota
	SpawnEnemy
	SpawnClue
	SpawnMagazine
	SpawnPotion
)

// Spawn places one entity on a cell. Arg is the question index for clues,
// the archetype index for enemies and unused otherwise.
type Spawn struct {
	Kind SpawnKind
	X, Y int
	Arg  int
}

// Map is one level: tile IDs, a same-sized collision grid and spawn markers.
type Map struct {
	Width, Height int
	Tiles         [][]int
	Solid         [][]bool
	Rooms         []Rect
	Spawns        []Spawn
}

// New creates a map filled with solid walls.
func New(width, height int) *Map {
	tiles := make([][]int, height)
	solid := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]int, width)
		solid[y] = make([]bool, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
			solid[y][x] = true
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles, Solid: solid}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y, tile int, solid bool) {
	m.Tiles[y][x] = tile
	m.Solid[y][x] = solid
}

// Carve turns (x, y) into open floor.
func (m *Map) Carve(x, y int) { m.Set(x, y, TileFloor, false) }

// TileAt returns the tile ID at (x, y), or TileWall outside the map.
func (m *Map) TileAt(x, y int) int {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// IsSolid reports whether (x, y) blocks movement. Out of bounds is solid.
func (m *Map) IsSolid(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Solid[y][x]
}

// SolidCount returns the number of solid cells.
func (m *Map) SolidCount() int {
	n := 0
	for _, row := range m.Solid {
		for _, s := range row {
			if s {
				n++
			}
		}
	}
	return n
}

// SpawnsOf returns the markers of one kind.
func (m *Map) SpawnsOf(kind SpawnKind) []Spawn {
	var out []Spawn
	for _, s := range m.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
