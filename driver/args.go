// Package driver - command-line parameter parsing.
package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Sentinel errors.
var (
	// ErrUsage covers every malformed command line: unknown flags,
	// missing values, bad instance tokens.
	ErrUsage = errors.New("driver: invalid usage")

	// ErrHelp reports that --help was requested; the caller prints the
	// usage text and exits zero.
	ErrHelp = errors.New("driver: help requested")

	// ErrUnknownDomain indicates a -d value outside {grid, pancake,
	// stp}.
	ErrUnknownDomain = errors.New("driver: unknown domain")
)

// Params are the parsed command-line parameters.
type Params struct {
	// Domain and Heuristic are lowercased selectors.
	Domain    string
	Heuristic string

	// Map and Scenario are the grid input files.
	Map      string
	Scenario string

	// Instances are the expanded instance ids, in argument order.
	Instances []int

	// Algorithms are the requested algorithm selectors.
	Algorithms []string
}

// HasAlgorithm reports whether the selector was requested
// (case-insensitive).
func (p *Params) HasAlgorithm(name string) bool {
	for _, a := range p.Algorithms {
		if strings.EqualFold(a, name) {
			return true
		}
	}

	return false
}

// Usage is the --help text.
const Usage = `Usage: bihs [options]
Options:
  --help                   Show this help message and exit
  -d, --domain <name>      Select the domain: grid, pancake, stp
  -h, --heuristic <name>   Domain-specific heuristic selector (e.g. GAP number)
  -m, --map <file>         Grid map file
  -s, --scenario <file>    Grid scenario file
  -i, --instances <list>   Instances: single ids or half-open ranges (e.g. 1 2 5-10)
  -a, --algorithms <list>  Algorithms (space-separated): DBBS-a DBBS-p TLBAE astar

Examples:
  bihs -d grid -i 0-1000 -a DBBS-a TLBAE -m maps/orz302d.map -s scenarios/orz302d.map.scen
  bihs -d pancake -h 0 -i 0-100 -a DBBS-a astar
`

// ParseArgs parses the command line (without the program name).
// Multi-token values of -i and -a are folded before handing the
// arguments to the flag set, so both "-i 1 2 5-10" and "-i 1,2,5-10"
// work.
func ParseArgs(args []string) (*Params, error) {
	fs := pflag.NewFlagSet("bihs", pflag.ContinueOnError)
	fs.SetOutput(discard{})

	var (
		p         Params
		help      bool
		instances []string
	)
	fs.StringVarP(&p.Domain, "domain", "d", "", "domain")
	fs.StringVarP(&p.Heuristic, "heuristic", "h", "", "heuristic")
	fs.StringVarP(&p.Map, "map", "m", "", "map file")
	fs.StringVarP(&p.Scenario, "scenario", "s", "", "scenario file")
	fs.StringSliceVarP(&instances, "instances", "i", nil, "instances")
	fs.StringSliceVarP(&p.Algorithms, "algorithms", "a", nil, "algorithms")
	fs.BoolVar(&help, "help", false, "help")

	if err := fs.Parse(foldMultiValueFlags(args)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if help {
		return nil, ErrHelp
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}

	ids, err := parseInstanceRanges(instances)
	if err != nil {
		return nil, err
	}
	p.Instances = ids

	p.Domain = strings.ToLower(p.Domain)
	p.Heuristic = strings.ToLower(p.Heuristic)

	return &p, nil
}

// foldMultiValueFlags joins the whitespace-separated value tokens of
// -i/--instances and -a/--algorithms into one comma-separated value,
// the shape the flag set expects.
func foldMultiValueFlags(args []string) []string {
	isMulti := func(arg string) bool {
		switch arg {
		case "-i", "--instances", "-a", "--algorithms":
			return true
		default:
			return false
		}
	}

	var out []string
	for i := 0; i < len(args); i++ {
		out = append(out, args[i])
		if !isMulti(args[i]) {
			continue
		}

		var group []string
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			group = append(group, args[i+1])
			i++
		}
		if len(group) > 0 {
			out = append(out, strings.Join(group, ","))
		}
	}

	return out
}

// parseInstanceRanges expands single ids and half-open a-b ranges
// (b exclusive).
func parseInstanceRanges(tokens []string) ([]int, error) {
	var ids []int
	for _, tok := range tokens {
		dash := strings.Index(tok, "-")
		if dash < 0 {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid instance %q", ErrUsage, tok)
			}
			ids = append(ids, id)

			continue
		}

		start, err1 := strconv.Atoi(tok[:dash])
		end, err2 := strconv.Atoi(tok[dash+1:])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: invalid instance token %q", ErrUsage, tok)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: invalid range %q", ErrUsage, tok)
		}
		for i := start; i < end; i++ {
			ids = append(ids, i)
		}
	}

	return ids, nil
}

// discard silences pflag's own error printing; errors surface through
// the returned error instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
