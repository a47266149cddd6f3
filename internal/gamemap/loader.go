package gamemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrEmptyMap     = errors.New("gamemap: no tile rows")
	ErrRaggedRow    = errors.New("gamemap: row width differs from first row")
	ErrGridMismatch = errors.New("gamemap: collision grid size differs from tile grid")
	ErrBadSpawn     = errors.New("gamemap: malformed spawn line")
)

var spawnCodes = map[string]SpawnKind{
	"P": SpawnPlayer,
	"E": SpawnEnemy,
	"C": SpawnClue,
	"M": SpawnMagazine,
	"H": SpawnPotion,
}

type line struct {
	no   int
	text string
}

// Parse reads a map. The format is a grid of tile IDs, a blank line, a grid
// of 0/1 collision flags of the same size and, optionally, a blank line and
// one spawn marker per line ("P x y", "E x y [archetype]", "C x y question",
// "M x y", "H x y"). Grid fields are separated by ',' or ';'.
func Parse(r io.Reader) (*Map, error) {
	sections, err := splitSections(r)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, ErrEmptyMap
	}

	tiles, err := parseGrid(sections[0])
	if err != nil {
		return nil, err
	}
	m := &Map{Height: len(tiles), Width: len(tiles[0]), Tiles: tiles}

	m.Solid = make([][]bool, m.Height)
	for y := range m.Solid {
		m.Solid[y] = make([]bool, m.Width)
	}
	if len(sections) > 1 {
		flags, err := parseGrid(sections[1])
		if err != nil {
			return nil, fmt.Errorf("collision grid: %w", err)
		}
		if len(flags) != m.Height || len(flags[0]) != m.Width {
			return nil, fmt.Errorf("%w: tiles %dx%d, collision %dx%d",
				ErrGridMismatch, m.Width, m.Height, len(flags[0]), len(flags))
		}
		for y, row := range flags {
			for x, v := range row {
				m.Solid[y][x] = v != 0
			}
		}
	}
	if len(sections) > 2 {
		for _, l := range sections[2] {
			s, err := parseSpawn(l)
			if err != nil {
				return nil, err
			}
			if !m.InBounds(s.X, s.Y) {
				return nil, fmt.Errorf("%w: line %d: (%d,%d) outside %dx%d map", ErrBadSpawn, l.no, s.X, s.Y, m.Width, m.Height)
			}
			m.Spawns = append(m.Spawns, s)
		}
	}
	return m, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Map, error) { return Parse(strings.NewReader(s)) }

func splitSections(r io.Reader) ([][]line, error) {
	var (
		sections [][]line
		cur      []line
		no       int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(strings.TrimRight(sc.Text(), "\r"))
		if text == "" {
			if len(cur) > 0 {
				sections = append(sections, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(cur) > 0 {
		sections = append(sections, cur)
	}
	return sections, nil
}

func isSep(r rune) bool { return r == ',' || r == ';' }

func parseGrid(lines []line) ([][]int, error) {
	grid := make([][]int, 0, len(lines))
	for _, l := range lines {
		fields := strings.FieldsFunc(l.text, isSep)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", l.no, err)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrRaggedRow, l.no, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyMap
	}
	return grid, nil
}

func parseSpawn(l line) (Spawn, error) {
	f := strings.Fields(l.text)
	if len(f) < 3 {
		return Spawn{}, fmt.Errorf("%w: line %d: %q", ErrBadSpawn, l.no, l.text)
	}
	kind, ok := spawnCodes[f[0]]
	if !ok {
		return Spawn{}, fmt.Errorf("%w: line %d: unknown kind %q", ErrBadSpawn, l.no, f[0])
	}
	nums := make([]int, 0, 3)
	for _, s := range f[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Spawn{}, fmt.Errorf("%w: line %d: %v", ErrBadSpawn, l.no, err)
		}
		nums = append(nums, v)
	}
	s := Spawn{Kind: kind, X: nums[0], Y: nums[1]}
	if len(nums) > 2 {
		s.Arg = nums[2]
	}
	return s, nil
}

// Encode writes m in the format Parse reads.
func Encode(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Tiles {
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	for _, row := range m.Solid {
		for x, s := range row {
			if x > 0 {
				bw.WriteByte(',')
			}
			if s {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	if len(m.Spawns) > 0 {
		bw.WriteByte('\n')
		for _, s := range m.Spawns {
			fmt.Fprintf(bw, "%s %d %d", spawnCode(s.Kind), s.X, s.Y)
			if s.Kind == SpawnClue || s.Kind == SpawnEnemy {
				fmt.Fprintf(bw, " %d", s.Arg)
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func spawnCode(k SpawnKind) string {
	for code, kind := range spawnCodes {
		if kind == k {
			return code
		}
	}
	return "?"
}
