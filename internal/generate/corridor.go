package generate

import (
	"math/rand"

	"clue-hunter/internal/gamemap"
)

// segment is an axis-aligned run of cells, endpoints inclusive.
type segment struct {
	X1, Y1, X2, Y2 int
}

func hseg(x1, x2, y int) segment { return segment{X1: min(x1, x2), Y1: y, X2: max(x1, x2), Y2: y} }
func vseg(y1, y2, x int) segment { return segment{X1: x, Y1: min(y1, y2), X2: x, Y2: max(y1, y2)} }

// corridorPath plans the segments joining (x1,y1) to (x2,y2).
func corridorPath(style CorridorStyle, x1, y1, x2, y2 int, rng *rand.Rand) []segment {
	switch style {
	case CorridorZShaped:
		mid := (y1 + y2) / 2
		return []segment{vseg(y1, mid, x1), hseg(x1, x2, mid), vseg(mid, y2, x2)}
	case CorridorStraight:
		return []segment{hseg(x1, x2, y1), vseg(y1, y2, x2)}
	}
	if rng != nil && rng.Intn(2) == 1 {
		return []segment{vseg(y1, y2, x1), hseg(x1, x2, y2)}
	}
	return []segment{hseg(x1, x2, y1), vseg(y1, y2, x2)}
}

// carveSegment opens s widened to width cells down and to the right,
// never touching the map border.
func carveSegment(m *gamemap.Map, s segment, width int) {
	width = max(width, 1)
	for y := s.Y1; y <= s.Y2+width-1; y++ {
		for x := s.X1; x <= s.X2+width-1; x++ {
			if x < 1 || y < 1 || x > m.Width-2 || y > m.Height-2 {
				continue
			}
			m.Carve(x, y)
		}
	}
}

// carveCorridor digs a tunnel between two room centers.
func carveCorridor(m *gamemap.Map, x1, y1, x2, y2 int, cfg *Config) {
	for _, s := range corridorPath(cfg.CorridorStyle, x1, y1, x2, y2, cfg.Rand) {
		carveSegment(m, s, cfg.CorridorWidth)
	}
}
