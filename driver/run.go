// Package driver - benchmark execution and result reporting.
package driver

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aristanetworks/glog"

	"github.com/katalvlaran/bihs/astar"
	"github.com/katalvlaran/bihs/core"
	"github.com/katalvlaran/bihs/dbbs"
	"github.com/katalvlaran/bihs/grid"
	"github.com/katalvlaran/bihs/pancake"
	"github.com/katalvlaran/bihs/stp"
	"github.com/katalvlaran/bihs/twolevelbae"
)

// pancakeN is the stack height of the pancake benchmark set.
const pancakeN = 16

// Run executes every requested instance/algorithm pair and writes the
// report lines to out.
func Run(p *Params, out io.Writer) error {
	switch p.Domain {
	case "grid":
		return runGrid(p, out)
	case "pancake":
		return runPancake(p, out)
	case "stp":
		return runSTP(p, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDomain, p.Domain)
	}
}

// runAlgorithms executes the selected engines on one instance of any
// domain and prints one report line per run.
func runAlgorithms[S comparable](p *Params, out io.Writer, env interface {
	core.Domain[S]
	core.Heuristic[S]
}, from, to S, epsilon, gcd float64) error {
	if p.HasAlgorithm("DBBS-a") {
		reportDBBS(out, "DBBS-a", dbbs.New[S](dbbs.WithAlternating(),
			dbbs.WithEpsilon(epsilon), dbbs.WithGCD(gcd)), env, from, to)
	}
	if p.HasAlgorithm("DBBS-p") {
		reportDBBS(out, "DBBS-p", dbbs.New[S](dbbs.WithFewestNodes(),
			dbbs.WithEpsilon(epsilon), dbbs.WithGCD(gcd)), env, from, to)
	}
	if p.HasAlgorithm("TLBAE") {
		engine := twolevelbae.New[S](twolevelbae.WithGCD(gcd))
		started := time.Now()
		sol, err := engine.FindPath(env, from, to, env, env)
		elapsed := time.Since(started)
		if err != nil {
			return err
		}
		report(out, "TLBAE", sol.Cost, sol.Expanded, engine.ExpandedWithFAbove(sol.Cost), elapsed)
	}
	if p.HasAlgorithm("astar") {
		engine := astar.New[S]()
		started := time.Now()
		sol, err := engine.FindPath(env, from, to, env)
		elapsed := time.Since(started)
		if err != nil {
			return err
		}
		report(out, "A*", sol.Cost, sol.Expanded, engine.ExpandedWithFAbove(sol.Cost), elapsed)
	}

	return nil
}

// reportDBBS runs one DBBS configuration. DBBS never closes a node
// whose f exceeds the proven bound, so its fabove is reported as 0.
func reportDBBS[S comparable](out io.Writer, name string, engine *dbbs.DBBS[S], env interface {
	core.Domain[S]
	core.Heuristic[S]
}, from, to S) {
	started := time.Now()
	sol, err := engine.FindPath(env, from, to, env, env)
	elapsed := time.Since(started)
	if err != nil {
		glog.Errorf("%s failed: %v", name, err)

		return
	}
	report(out, name, sol.Cost, sol.Expanded, 0, elapsed)
}

func report(out io.Writer, alg string, cost float64, expanded uint64, fabove int, elapsed time.Duration) {
	fmt.Fprintf(out, "[R] alg: %s; solution: %1.1f; expanded: %d; fabove: %d; time: %1.6fs\n",
		alg, cost, expanded, fabove, elapsed.Seconds())
}

func runGrid(p *Params, out io.Writer) error {
	s, err := grid.LoadScenario(p.Scenario)
	if err != nil {
		return err
	}
	m, err := grid.LoadMap(p.Map)
	if err != nil {
		return err
	}
	env := grid.NewEnv(m)

	fmt.Fprintf(out, "[D] domain: %s; map: %s\n", p.Domain, filepath.Base(p.Map))

	// One representative experiment per difficulty bucket, as in the
	// reference experiments.
	seenBuckets := map[int]bool{}
	for _, i := range p.Instances {
		if i < 0 || i >= s.Len() || s.Experiments[i].Distance == 0 {
			continue
		}
		exp := s.Experiments[i]
		if seenBuckets[exp.Bucket] {
			continue
		}
		seenBuckets[exp.Bucket] = true

		fmt.Fprintf(out, "[I] id: %d; start: (%d, %d); goal: (%d, %d)\n",
			i, exp.Start.X, exp.Start.Y, exp.Goal.X, exp.Goal.Y)
		glog.V(1).Infof("grid instance %d: %v -> %v (optimal %g)", i, exp.Start, exp.Goal, exp.Distance)

		if err := runAlgorithms[grid.Coord](p, out, env, exp.Start, exp.Goal, 1.0, grid.DefaultGCD); err != nil {
			return err
		}
	}

	return nil
}

func runPancake(p *Params, out io.Writer) error {
	gap, err := parseGap(p.Heuristic)
	if err != nil {
		return err
	}
	env, err := pancake.NewEnv(gap)
	if err != nil {
		return err
	}
	goal, err := pancake.Goal(pancakeN)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "[D] domain: pancake; heuristic: GAP-%d\n", gap)

	for _, i := range p.Instances {
		start, err := pancake.Instance(pancakeN, i)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "[I] id: %d; instance: %v\n", i, start)
		glog.V(1).Infof("pancake instance %d: %v", i, start)

		if err := runAlgorithms[pancake.State](p, out, env, start, goal, 1.0, 1.0); err != nil {
			return err
		}
	}

	return nil
}

func runSTP(p *Params, out io.Writer) error {
	env := stp.NewEnv()
	goal := stp.Goal()

	fmt.Fprintf(out, "[D] domain: stp; heuristic: manhattan\n")

	for _, i := range p.Instances {
		start, err := stp.Instance(i)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "[I] id: %d; instance: %v\n", i, start)
		glog.V(1).Infof("stp instance %d: %v", i, start)

		if err := runAlgorithms[stp.State](p, out, env, start, goal, 1.0, 1.0); err != nil {
			return err
		}
	}

	return nil
}

// parseGap extracts the GAP parameter from selectors like "2" or
// "gap-2"; empty means GAP-0.
func parseGap(heuristic string) (int, error) {
	if heuristic == "" {
		return 0, nil
	}

	var gap int
	if _, err := fmt.Sscanf(heuristic, "gap-%d", &gap); err == nil {
		return gap, nil
	}
	if _, err := fmt.Sscanf(heuristic, "%d", &gap); err == nil {
		return gap, nil
	}

	return 0, fmt.Errorf("%w: heuristic %q", ErrUsage, heuristic)
}
