// Package grid - the .scen scenario loader.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Experiment is one scenario entry: a start/goal query with its
// difficulty bucket and known optimal distance.
type Experiment struct {
	Bucket        int
	MapName       string
	Width, Height int
	Start, Goal   Coord
	Distance      float64
}

// Scenario is an ordered list of experiments.
type Scenario struct {
	Experiments []Experiment
}

// Len returns the experiment count.
func (s *Scenario) Len() int { return len(s.Experiments) }

// LoadScenario reads a .scen file from disk.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open scenario: %w", err)
	}
	defer f.Close()

	return ParseScenario(f)
}

// ParseScenario reads the HOG2 .scen format: an optional "version"
// line followed by whitespace-separated rows of
// bucket, map, width, height, startX, startY, goalX, goalY, distance.
func ParseScenario(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	s := &Scenario{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if line == 1 && strings.HasPrefix(strings.ToLower(text), "version") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 9 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 9", ErrBadScenario, line, len(fields))
		}

		var (
			exp  Experiment
			ints [7]int
			err  error
		)
		for i, idx := range []int{0, 2, 3, 4, 5, 6, 7} {
			if ints[i], err = strconv.Atoi(fields[idx]); err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %v", ErrBadScenario, line, idx, err)
			}
		}
		exp.Bucket, exp.MapName = ints[0], fields[1]
		exp.Width, exp.Height = ints[1], ints[2]
		exp.Start = Coord{X: int32(ints[3]), Y: int32(ints[4])}
		exp.Goal = Coord{X: int32(ints[5]), Y: int32(ints[6])}
		if exp.Distance, err = strconv.ParseFloat(fields[8], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d distance: %v", ErrBadScenario, line, err)
		}

		s.Experiments = append(s.Experiments, exp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read scenario: %w", err)
	}

	return s, nil
}
