// Package grid - the Map obstacle grid and the Env search domain.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Map is an immutable-after-setup obstacle grid.
type Map struct {
	width, height int
	blocked       []bool
}

// NewMap returns an all-passable width×height map.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Map{width: width, height: height, blocked: make([]bool, width*height)}, nil
}

// Width returns the horizontal cell count.
func (m *Map) Width() int { return m.width }

// Height returns the vertical cell count.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && int(x) < m.width && int(y) < m.height
}

// Passable reports whether (x, y) is on the map and unblocked.
func (m *Map) Passable(x, y int32) bool {
	return m.InBounds(x, y) && !m.blocked[int(y)*m.width+int(x)]
}

// SetBlocked marks a cell blocked or passable.
func (m *Map) SetBlocked(x, y int32, blocked bool) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	m.blocked[int(y)*m.width+int(x)] = blocked

	return nil
}

// LoadMap reads a .map file from disk.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open map: %w", err)
	}
	defer f.Close()

	return ParseMap(f)
}

// ParseMap reads the HOG2 .map format: a four-line header (type,
// height, width, map) followed by height rows of width cells each.
func ParseMap(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header := map[string]string{}
	for len(header) < 3 {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated header", ErrBadMapHeader)
		}
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 2:
			header[strings.ToLower(fields[0])] = fields[1]
		case len(fields) == 1 && strings.EqualFold(fields[0], "map"):
			return nil, fmt.Errorf("%w: map body before size", ErrBadMapHeader)
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadMapHeader, sc.Text())
		}
	}

	height, err := strconv.Atoi(header["height"])
	if err != nil || height <= 0 {
		return nil, fmt.Errorf("%w: bad height", ErrBadMapHeader)
	}
	width, err := strconv.Atoi(header["width"])
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: bad width", ErrBadMapHeader)
	}

	if !sc.Scan() || !strings.EqualFold(strings.TrimSpace(sc.Text()), "map") {
		return nil, fmt.Errorf("%w: missing map marker", ErrBadMapHeader)
	}

	m, err := NewMap(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrNonRectangular, y, height)
		}
		row := sc.Text()
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			m.blocked[y*width+x] = !passableChar(row[x])
		}
	}

	return m, nil
}

// passableChar follows the HOG2 convention: ground and swamp are
// walkable, everything else (@, O, T, W, …) blocks.
func passableChar(c byte) bool { return c == '.' || c == 'G' || c == 'S' }

// Env is the search domain over a Map. It implements both
// core.Domain[Coord] and core.Heuristic[Coord] (octile distance), so
// one value serves as environment and as either direction's heuristic.
type Env struct {
	m    *Map
	opts Options
}

// NewEnv wraps a map into a search environment.
func NewEnv(m *Map, opts ...Option) *Env {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Env{m: m, opts: cfg}
}

// Map returns the underlying obstacle grid.
func (e *Env) Map() *Map { return e.m }

// cardinal and diagonal neighbor offsets; diagonal i is adjacent to
// cardinals i and (i+1)%4, which the corner-cutting rule checks.
var (
	cardinalOffsets = [4][2]int32{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalOffsets = [4][2]int32{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// AppendSuccessors implements core.Domain.
func (e *Env) AppendSuccessors(s Coord, buf []Coord) []Coord {
	var open [4]bool
	for i, d := range cardinalOffsets {
		x, y := s.X+d[0], s.Y+d[1]
		if e.m.Passable(x, y) {
			open[i] = true
			buf = append(buf, Coord{X: x, Y: y})
		}
	}

	if e.opts.Conn == Conn4 {
		return buf
	}

	for i, d := range diagonalOffsets {
		if !open[i] || !open[(i+1)%4] {
			continue // no corner cutting
		}
		x, y := s.X+d[0], s.Y+d[1]
		if e.m.Passable(x, y) {
			buf = append(buf, Coord{X: x, Y: y})
		}
	}

	return buf
}

// Cost implements core.Domain: 1 for straight moves, DiagonalCost for
// diagonal ones.
func (e *Env) Cost(from, to Coord) float64 {
	if from.X != to.X && from.Y != to.Y {
		return e.opts.DiagonalCost
	}

	return 1.0
}

// Hash implements core.Domain.
func (e *Env) Hash(s Coord) uint64 {
	return uint64(uint32(s.Y))<<32 | uint64(uint32(s.X))
}

// H implements core.Heuristic: octile distance for Conn8, Manhattan
// for Conn4. Both are consistent under the matching move costs.
func (e *Env) H(from, to Coord) float64 {
	dx := math.Abs(float64(from.X - to.X))
	dy := math.Abs(float64(from.Y - to.Y))

	if e.opts.Conn == Conn4 {
		return dx + dy
	}

	short, long := dx, dy
	if short > long {
		short, long = long, short
	}

	return short*e.opts.DiagonalCost + (long - short)
}

// PathCost sums the edge costs along a path.
func (e *Env) PathCost(path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += e.Cost(path[i-1], path[i])
	}

	return total
}
