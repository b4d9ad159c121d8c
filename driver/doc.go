// Package driver wires the search engines and domains into the
// benchmark command line: flag parsing, instance selection, and the
// per-run result report.
//
// Usage:
//
//	bihs -d grid -m maps/arena.map -s scenarios/arena.map.scen \
//	     -i 0-50 -a DBBS-a TLBAE astar
//	bihs -d pancake -h 0 -i 0-100 -a DBBS-a DBBS-p
//	bihs -d stp -i 1 -a DBBS-a TLBAE
//
// The -i/--instances value accepts single ids and half-open ranges
// a-b (b exclusive); -a/--algorithms accepts whitespace-separated
// selectors (case-insensitive): DBBS-a, DBBS-p, TLBAE, astar.
//
// For every instance/algorithm pair the driver prints one line:
//
//	[R] alg: DBBS-a; solution: 7.5; expanded: 312; fabove: 0; time: 0.000812s
//
// Usage errors go to stderr with a non-zero exit; --help exits zero.
package driver
