package generate

import (
	"math/rand"
	"testing"

	"clue-hunter/internal/gamemap"
)

func openCells(m *gamemap.Map) int {
	return m.Width*m.Height - m.SolidCount()
}

func TestCorridorPathEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		style CorridorStyle
		segs  int
	}{
		{"straight", CorridorStraight, 2},
		{"l-shaped", CorridorLShaped, 2},
		{"z-shaped", CorridorZShaped, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := corridorPath(tt.style, 12, 3, 2, 9, rand.New(rand.NewSource(1)))
			if len(path) != tt.segs {
				t.Fatalf("got %d segments, want %d", len(path), tt.segs)
			}
			for i, s := range path {
				if s.X1 > s.X2 || s.Y1 > s.Y2 {
					t.Errorf("segment %d not normalised: %+v", i, s)
				}
				if s.X1 != s.X2 && s.Y1 != s.Y2 {
					t.Errorf("segment %d is diagonal: %+v", i, s)
				}
			}

			m := gamemap.New(16, 12)
			for _, s := range path {
				carveSegment(m, s, 1)
			}
			if m.IsSolid(12, 3) || m.IsSolid(2, 9) {
				t.Fatal("endpoints not carved")
			}
		})
	}
}

func TestCarveSegmentWidth(t *testing.T) {
	m := gamemap.New(20, 10)
	carveSegment(m, hseg(8, 3, 4), 1)
	if got := openCells(m); got != 6 {
		t.Fatalf("width 1: %d open cells, want 6", got)
	}

	m = gamemap.New(20, 10)
	carveSegment(m, hseg(3, 8, 4), 2)
	if got := openCells(m); got != 14 {
		t.Fatalf("width 2: %d open cells, want 14", got)
	}
	if m.IsSolid(3, 5) || m.IsSolid(9, 5) {
		t.Fatal("second lane not carved")
	}
}

func TestCarveSegmentKeepsBorder(t *testing.T) {
	m := gamemap.New(10, 8)
	carveSegment(m, vseg(0, 7, 0), 3)
	for y := 0; y < m.Height; y++ {
		if !m.IsSolid(0, y) {
			t.Fatalf("left border opened at y=%d", y)
		}
	}
	for x := 0; x < m.Width; x++ {
		if !m.IsSolid(x, 0) || !m.IsSolid(x, m.Height-1) {
			t.Fatalf("top/bottom border opened at x=%d", x)
		}
	}
	if m.IsSolid(1, 3) || m.IsSolid(2, 3) {
		t.Fatal("interior lanes should be open")
	}
}

func TestCarveCorridorJoinsRooms(t *testing.T) {
	for _, style := range []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight} {
		cfg := &Config{CorridorStyle: style, CorridorWidth: 1, Rand: rand.New(rand.NewSource(7))}
		m := gamemap.New(30, 20)
		carveCorridor(m, 4, 4, 25, 15, cfg)

		// Walk the open cells from one end; the other end must be reached.
		seen := map[[2]int]bool{{4, 4}: true}
		queue := [][2]int{{4, 4}}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				n := [2]int{c[0] + d[0], c[1] + d[1]}
				if seen[n] || !m.InBounds(n[0], n[1]) || m.IsSolid(n[0], n[1]) {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
		if !seen[[2]int{25, 15}] {
			t.Errorf("style %d: corridor does not connect", style)
		}
	}
}
