// Package grid_test covers the map/scenario loaders, the successor
// rules (corner cutting, connectivity), costs, and the octile
// heuristic.
package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/bihs/grid"
	"github.com/stretchr/testify/require"
)

const sampleMap = `type octile
height 3
width 4
map
.@..
....
..T.
`

func TestParseMap_Sample(t *testing.T) {
	m, err := grid.ParseMap(strings.NewReader(sampleMap))
	require.NoError(t, err)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())

	require.True(t, m.Passable(0, 0))
	require.False(t, m.Passable(1, 0))  // '@'
	require.False(t, m.Passable(2, 2))  // 'T'
	require.False(t, m.Passable(-1, 0)) // out of bounds
	require.False(t, m.Passable(4, 0))
}

func TestParseMap_Errors(t *testing.T) {
	_, err := grid.ParseMap(strings.NewReader("type octile\nheight 2\nwidth 2\nmap\n..\n"))
	require.ErrorIs(t, err, grid.ErrNonRectangular) // one row missing

	_, err = grid.ParseMap(strings.NewReader("type octile\nheight 2\nwidth 3\nmap\n..\n..\n"))
	require.ErrorIs(t, err, grid.ErrNonRectangular) // short row

	_, err = grid.ParseMap(strings.NewReader("height x\n"))
	require.ErrorIs(t, err, grid.ErrBadMapHeader)

	_, err = grid.ParseMap(strings.NewReader("type octile\nheight 0\nwidth 2\nmap\n"))
	require.ErrorIs(t, err, grid.ErrBadMapHeader)
}

func TestNewMap_Validation(t *testing.T) {
	_, err := grid.NewMap(0, 3)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	m, err := grid.NewMap(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.SetBlocked(5, 0, true), grid.ErrOutOfBounds)
}

func TestEnv_SuccessorsConn8(t *testing.T) {
	m, err := grid.NewMap(3, 3)
	require.NoError(t, err)
	env := grid.NewEnv(m)

	// Center of an open 3×3: all eight neighbors.
	succ := env.AppendSuccessors(grid.Coord{X: 1, Y: 1}, nil)
	require.Len(t, succ, 8)

	// Corner: two cardinals plus one diagonal.
	succ = env.AppendSuccessors(grid.Coord{X: 0, Y: 0}, nil)
	require.Len(t, succ, 3)
}

func TestEnv_NoCornerCutting(t *testing.T) {
	m, err := grid.NewMap(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetBlocked(1, 0, true))
	require.NoError(t, m.SetBlocked(0, 1, true))
	env := grid.NewEnv(m)

	// Both cardinals around the diagonal are blocked: the diagonal
	// move to (1,1) is forbidden.
	succ := env.AppendSuccessors(grid.Coord{X: 0, Y: 0}, nil)
	require.Empty(t, succ)
}

func TestEnv_SuccessorsConn4(t *testing.T) {
	m, err := grid.NewMap(3, 3)
	require.NoError(t, err)
	env := grid.NewEnv(m, grid.WithConn(grid.Conn4))

	succ := env.AppendSuccessors(grid.Coord{X: 1, Y: 1}, nil)
	require.Len(t, succ, 4)
}

func TestEnv_CostAndHeuristic(t *testing.T) {
	m, err := grid.NewMap(8, 8)
	require.NoError(t, err)
	env := grid.NewEnv(m)

	require.Equal(t, 1.0, env.Cost(grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 1}))
	require.Equal(t, 1.5, env.Cost(grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 2}))

	// Octile: 2 diagonal steps + 1 straight step.
	h := env.H(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 2})
	require.Equal(t, 2*1.5+1, h)

	// Symmetric in both directions.
	require.Equal(t, h, env.H(grid.Coord{X: 3, Y: 2}, grid.Coord{X: 0, Y: 0}))

	// Conn4 falls back to Manhattan.
	env4 := grid.NewEnv(m, grid.WithConn(grid.Conn4))
	require.Equal(t, 5.0, env4.H(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 2}))
}

func TestEnv_PathCost(t *testing.T) {
	m, err := grid.NewMap(3, 3)
	require.NoError(t, err)
	env := grid.NewEnv(m)

	path := []grid.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	require.Equal(t, 4.0, env.PathCost(path)) // 1.5 + 1.5 + 1
}

func TestEnv_HashDistinct(t *testing.T) {
	m, err := grid.NewMap(4, 4)
	require.NoError(t, err)
	env := grid.NewEnv(m)

	seen := map[uint64]bool{}
	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			h := env.Hash(grid.Coord{X: x, Y: y})
			require.False(t, seen[h])
			seen[h] = true
		}
	}
}

const sampleScen = `version 1
0 arena.map 49 49 1 11 1 12 1
0 arena.map 49 49 28 9 27 9 1
1 arena.map 49 49 21 41 13 41 8
`

func TestParseScenario_Sample(t *testing.T) {
	s, err := grid.ParseScenario(strings.NewReader(sampleScen))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	exp := s.Experiments[2]
	require.Equal(t, 1, exp.Bucket)
	require.Equal(t, "arena.map", exp.MapName)
	require.Equal(t, grid.Coord{X: 21, Y: 41}, exp.Start)
	require.Equal(t, grid.Coord{X: 13, Y: 41}, exp.Goal)
	require.Equal(t, 8.0, exp.Distance)
}

func TestParseScenario_Errors(t *testing.T) {
	_, err := grid.ParseScenario(strings.NewReader("version 1\n0 arena.map 49 49 1 11 1\n"))
	require.ErrorIs(t, err, grid.ErrBadScenario)

	_, err = grid.ParseScenario(strings.NewReader("0 arena.map 49 49 1 11 1 12 x\n"))
	require.ErrorIs(t, err, grid.ErrBadScenario)
}
