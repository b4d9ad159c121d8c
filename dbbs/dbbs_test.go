// Package dbbs_test covers the DBBS engine: validation, optimal costs
// on explicit graphs, the grid and pancake scenarios, termination
// invariants, and the side-selection policies.
package dbbs_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bihs/bucket"
	"github.com/katalvlaran/bihs/core"
	"github.com/katalvlaran/bihs/dbbs"
	"github.com/katalvlaran/bihs/grid"
	"github.com/katalvlaran/bihs/pancake"
	"github.com/stretchr/testify/require"
)

func TestDBBS_Validation(t *testing.T) {
	engine := dbbs.New[string]()

	_, err := engine.FindPath(nil, "A", "B", zeroH[string](), zeroH[string]())
	require.ErrorIs(t, err, dbbs.ErrNilDomain)

	g := newGraphDomain().edge("A", "B", 1)
	_, err = engine.FindPath(g, "A", "B", nil, zeroH[string]())
	require.ErrorIs(t, err, dbbs.ErrNilHeuristic)
}

func TestDBBS_StartEqualsGoal(t *testing.T) {
	g := newGraphDomain().edge("A", "B", 1)
	engine := dbbs.New[string]()

	sol, err := engine.FindPath(g, "A", "A", zeroH[string](), zeroH[string]())
	require.NoError(t, err)
	require.Equal(t, 0.0, sol.Cost)
	require.Equal(t, []string{"A"}, sol.Path)
	require.Zero(t, sol.Expanded)
}

func TestDBBS_LineGraph(t *testing.T) {
	g := newGraphDomain().edge("A", "B", 1).edge("B", "C", 1).edge("C", "D", 1)
	engine := dbbs.New[string]()

	sol, err := engine.FindPath(g, "A", "D", zeroH[string](), zeroH[string]())
	require.NoError(t, err)
	require.Equal(t, 3.0, sol.Cost)
	require.Equal(t, []string{"A", "B", "C", "D"}, sol.Path)
}

func TestDBBS_PrefersCheapDetour(t *testing.T) {
	// Direct edge costs 10; the detour through C and D costs 3.
	g := newGraphDomain().
		edge("A", "B", 10).
		edge("A", "C", 1).edge("C", "D", 1).edge("D", "B", 1)
	engine := dbbs.New[string]()

	sol, err := engine.FindPath(g, "A", "B", zeroH[string](), zeroH[string]())
	require.NoError(t, err)
	require.Equal(t, 3.0, sol.Cost)
	require.Equal(t, []string{"A", "C", "D", "B"}, sol.Path)
}

func TestDBBS_Disconnected(t *testing.T) {
	g := newGraphDomain().edge("A", "B", 1).edge("C", "D", 1)
	engine := dbbs.New[string]()

	sol, err := engine.FindPath(g, "A", "D", zeroH[string](), zeroH[string]())
	require.NoError(t, err)
	require.False(t, sol.Found())
	require.True(t, math.IsInf(sol.Cost, 1))
	require.Empty(t, sol.Path)
}

// TestDBBS_Grid3x3Diagonal is the reference scenario: open 3×3 map
// with diagonal cost 1.5, corner to corner.
func TestDBBS_Grid3x3Diagonal(t *testing.T) {
	m, err := grid.NewMap(3, 3)
	require.NoError(t, err)
	env := grid.NewEnv(m)
	engine := dbbs.New[grid.Coord](dbbs.WithGCD(grid.DefaultGCD))

	from, to := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2}
	sol, err := engine.FindPath(env, from, to, env, env)
	require.NoError(t, err)
	require.Equal(t, 3.0, sol.Cost) // two diagonal steps
	require.Equal(t, sol.Cost, env.PathCost(sol.Path))
	require.Equal(t, from, sol.Path[0])
	require.Equal(t, to, sol.Path[len(sol.Path)-1])

	require.GreaterOrEqual(t, sol.Expanded, uint64(2))
	require.LessOrEqual(t, sol.Expanded, uint64(5))

	// Termination invariant: the solution is within epsilon of the
	// proved bound.
	require.True(t, core.Flesseq(sol.Cost, engine.LowerBound()+core.Tolerance))
}

func TestDBBS_GridWithWall(t *testing.T) {
	// A vertical wall with a gap at the bottom forces a detour.
	m, err := grid.NewMap(5, 5)
	require.NoError(t, err)
	for y := int32(0); y < 4; y++ {
		require.NoError(t, m.SetBlocked(2, y, true))
	}
	env := grid.NewEnv(m)
	engine := dbbs.New[grid.Coord](dbbs.WithGCD(grid.DefaultGCD))

	sol, err := engine.FindPath(env, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 0}, env, env)
	require.NoError(t, err)
	require.True(t, sol.Found())
	require.Equal(t, sol.Cost, env.PathCost(sol.Path))

	// Every step must be between adjacent passable cells.
	for i := 1; i < len(sol.Path); i++ {
		dx := sol.Path[i].X - sol.Path[i-1].X
		dy := sol.Path[i].Y - sol.Path[i-1].Y
		require.LessOrEqual(t, dx*dx+dy*dy, int32(2))
		require.True(t, m.Passable(sol.Path[i].X, sol.Path[i].Y))
	}
}

func TestDBBS_SwapSymmetry(t *testing.T) {
	m, err := grid.NewMap(6, 4)
	require.NoError(t, err)
	require.NoError(t, m.SetBlocked(3, 1, true))
	require.NoError(t, m.SetBlocked(3, 2, true))
	env := grid.NewEnv(m)
	engine := dbbs.New[grid.Coord](dbbs.WithGCD(grid.DefaultGCD))

	a, b := grid.Coord{X: 0, Y: 1}, grid.Coord{X: 5, Y: 2}
	there, err := engine.FindPath(env, a, b, env, env)
	require.NoError(t, err)
	back, err := engine.FindPath(env, b, a, env, env)
	require.NoError(t, err)

	require.Equal(t, there.Cost, back.Cost)
}

func TestDBBS_RerunIdempotent(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	start, err := pancake.NewState([]int{3, 1, 4, 2})
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	engine := dbbs.New[pancake.State]()
	first, err := engine.FindPath(env, start, goal, env, env)
	require.NoError(t, err)
	second, err := engine.FindPath(env, start, goal, env, env)
	require.NoError(t, err)

	require.Equal(t, first.Cost, second.Cost)
	require.Equal(t, first.Expanded, second.Expanded) // deterministic tie-breaks
}

func TestDBBS_PancakeSingleFlip(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	start, err := pancake.NewState([]int{4, 3, 2, 1})
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	engine := dbbs.New[pancake.State]()
	sol, err := engine.FindPath(env, start, goal, env, env)
	require.NoError(t, err)
	require.Equal(t, 1.0, sol.Cost)
	require.Equal(t, []pancake.State{start, goal}, sol.Path)
}

func TestDBBS_FewestNodesPolicyAgrees(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	start, err := pancake.NewState([]int{3, 1, 4, 2})
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	alternating := dbbs.New[pancake.State](dbbs.WithAlternating())
	fewest := dbbs.New[pancake.State](dbbs.WithFewestNodes())

	a, err := alternating.FindPath(env, start, goal, env, env)
	require.NoError(t, err)
	b, err := fewest.FindPath(env, start, goal, env, env)
	require.NoError(t, err)

	require.Equal(t, a.Cost, b.Cost)
}

func TestDBBS_CriterionVariantsAgree(t *testing.T) {
	m, err := grid.NewMap(5, 5)
	require.NoError(t, err)
	require.NoError(t, m.SetBlocked(2, 2, true))
	env := grid.NewEnv(m)

	from, to := grid.Coord{X: 0, Y: 2}, grid.Coord{X: 4, Y: 2}
	var costs []float64
	for _, crit := range []struct {
		name string
		opt  dbbs.Option
	}{
		{"MinG", dbbs.WithCriterion(bucket.MinG)},
		{"MinF", dbbs.WithCriterion(bucket.MinF)},
		{"MinD", dbbs.WithCriterion(bucket.MinD)},
		{"MinB", dbbs.WithCriterion(bucket.MinB)},
	} {
		engine := dbbs.New[grid.Coord](dbbs.WithGCD(grid.DefaultGCD), crit.opt)
		sol, err := engine.FindPath(env, from, to, env, env)
		require.NoError(t, err, crit.name)
		costs = append(costs, sol.Cost)
	}
	for _, c := range costs[1:] {
		require.Equal(t, costs[0], c)
	}
}

func TestDBBS_BoundSwitchVariantsAgree(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	start, err := pancake.NewState([]int{2, 4, 1, 3})
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	base, err := dbbs.New[pancake.State]().FindPath(env, start, goal, env, env)
	require.NoError(t, err)

	noB := dbbs.New[pancake.State](dbbs.WithUseB(false))
	solNoB, err := noB.FindPath(env, start, goal, env, env)
	require.NoError(t, err)
	require.Equal(t, base.Cost, solNoB.Cost)

	noRC := dbbs.New[pancake.State](dbbs.WithUseRC(false))
	solNoRC, err := noRC.FindPath(env, start, goal, env, env)
	require.NoError(t, err)
	require.Equal(t, base.Cost, solNoRC.Cost)
}
