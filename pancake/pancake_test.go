// Package pancake_test covers state construction, the flip successor
// rule, and the GAP-k heuristic, cross-checking GAP admissibility
// against a brute-force breadth-first search.
package pancake_test

import (
	"testing"

	"github.com/katalvlaran/bihs/pancake"
	"github.com/stretchr/testify/require"
)

func TestNewState_Validation(t *testing.T) {
	_, err := pancake.NewState([]int{1})
	require.ErrorIs(t, err, pancake.ErrBadSize)

	_, err = pancake.NewState([]int{1, 1, 3})
	require.ErrorIs(t, err, pancake.ErrNotPermutation)

	_, err = pancake.NewState([]int{1, 2, 5})
	require.ErrorIs(t, err, pancake.ErrNotPermutation)

	s, err := pancake.NewState([]int{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, uint8(3), s.N)
}

func TestEnv_Successors(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)

	s, err := pancake.NewState([]int{1, 2, 3, 4})
	require.NoError(t, err)

	succ := env.AppendSuccessors(s, nil)
	require.Len(t, succ, 3) // flips of length 2, 3, 4

	flip4, err := pancake.NewState([]int{4, 3, 2, 1})
	require.NoError(t, err)
	require.Contains(t, succ, flip4)

	// A flip is its own inverse.
	back := env.AppendSuccessors(flip4, nil)
	require.Contains(t, back, s)
}

func TestEnv_GapHeuristic(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	// Single length-4 flip away: one plate gap.
	s, err := pancake.NewState([]int{4, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 1.0, env.H(s, goal))

	// Goal state: no gaps.
	require.Equal(t, 0.0, env.H(goal, goal))

	// All adjacencies broken plus the plate.
	s, err = pancake.NewState([]int{3, 1, 4, 2})
	require.NoError(t, err)
	require.Equal(t, 4.0, env.H(s, goal))
}

func TestEnv_GapKIgnoresSmallPancakes(t *testing.T) {
	goal, err := pancake.Goal(4)
	require.NoError(t, err)
	s, err := pancake.NewState([]int{3, 1, 4, 2})
	require.NoError(t, err)

	gap0, err := pancake.NewEnv(0)
	require.NoError(t, err)
	gap2, err := pancake.NewEnv(2)
	require.NoError(t, err)

	// GAP-2 ignores every gap involving pancakes 1 and 2.
	require.Greater(t, gap0.H(s, goal), gap2.H(s, goal))
}

// TestEnv_GapSymmetricBetweenDirections checks the two-state form used
// by the backward search: ranking through the target makes
// H(a, b) == H(b, a) for the pure GAP heuristic.
func TestEnv_GapSymmetricBetweenDirections(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)

	a, err := pancake.NewState([]int{2, 4, 1, 3})
	require.NoError(t, err)
	b, err := pancake.NewState([]int{3, 1, 4, 2})
	require.NoError(t, err)

	require.Equal(t, env.H(a, b), env.H(b, a))
}

func TestInstance_Deterministic(t *testing.T) {
	a, err := pancake.Instance(10, 7)
	require.NoError(t, err)
	b, err := pancake.Instance(10, 7)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := pancake.Instance(10, 8)
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	// Each instance is a valid permutation.
	var seen [pancake.MaxN + 1]bool
	for _, v := range a.Seq[:a.N] {
		require.False(t, seen[v])
		seen[v] = true
	}
}

// bfsCost is the brute-force oracle: uniform-cost breadth-first search
// over the flip graph.
func bfsCost(t *testing.T, env *pancake.Env, from, to pancake.State) float64 {
	t.Helper()

	if from == to {
		return 0
	}

	dist := map[pancake.State]int{from: 0}
	frontier := []pancake.State{from}
	var buf []pancake.State
	for len(frontier) > 0 {
		var next []pancake.State
		for _, s := range frontier {
			buf = env.AppendSuccessors(s, buf[:0])
			for _, succ := range buf {
				if _, ok := dist[succ]; ok {
					continue
				}
				dist[succ] = dist[s] + 1
				if succ == to {
					return float64(dist[succ])
				}
				next = append(next, succ)
			}
		}
		frontier = next
	}

	t.Fatalf("unsolvable pancake instance %v", from)

	return -1
}

// TestGap_AdmissibleOnAllN4States verifies h ≤ optimal cost for every
// permutation of four pancakes.
func TestGap_AdmissibleOnAllN4States(t *testing.T) {
	env, err := pancake.NewEnv(0)
	require.NoError(t, err)
	goal, err := pancake.Goal(4)
	require.NoError(t, err)

	perms := permutations([]int{1, 2, 3, 4})
	for _, p := range perms {
		s, err := pancake.NewState(p)
		require.NoError(t, err)
		opt := bfsCost(t, env, s, goal)
		require.LessOrEqual(t, env.H(s, goal), opt, "state %v", p)
	}
}

func permutations(values []int) [][]int {
	if len(values) == 1 {
		return [][]int{{values[0]}}
	}

	var out [][]int
	for i := range values {
		rest := make([]int, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		for _, sub := range permutations(rest) {
			out = append(out, append([]int{values[i]}, sub...))
		}
	}

	return out
}
