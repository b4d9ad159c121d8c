// Package driver_test covers command-line parsing: flag forms,
// multi-token instance and algorithm lists, ranges, and usage errors.
package driver_test

import (
	"testing"

	"github.com/katalvlaran/bihs/driver"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Full(t *testing.T) {
	p, err := driver.ParseArgs([]string{
		"-d", "Grid", "-h", "OD",
		"-m", "maps/arena.map", "-s", "scen/arena.map.scen",
		"-i", "1", "2", "5-8",
		"-a", "DBBS-a", "TLBAE",
	})
	require.NoError(t, err)

	require.Equal(t, "grid", p.Domain) // lowercased
	require.Equal(t, "od", p.Heuristic)
	require.Equal(t, "maps/arena.map", p.Map)
	require.Equal(t, "scen/arena.map.scen", p.Scenario)
	require.Equal(t, []int{1, 2, 5, 6, 7}, p.Instances) // 5-8 is half-open
	require.True(t, p.HasAlgorithm("dbbs-a"))           // case-insensitive
	require.True(t, p.HasAlgorithm("TLBAE"))
	require.False(t, p.HasAlgorithm("astar"))
}

func TestParseArgs_LongFlags(t *testing.T) {
	p, err := driver.ParseArgs([]string{
		"--domain", "pancake", "--heuristic", "2",
		"--instances", "0-3", "--algorithms", "astar",
	})
	require.NoError(t, err)
	require.Equal(t, "pancake", p.Domain)
	require.Equal(t, []int{0, 1, 2}, p.Instances)
	require.True(t, p.HasAlgorithm("astar"))
}

func TestParseArgs_Help(t *testing.T) {
	_, err := driver.ParseArgs([]string{"--help"})
	require.ErrorIs(t, err, driver.ErrHelp)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := driver.ParseArgs([]string{"--nope"})
	require.ErrorIs(t, err, driver.ErrUsage)
}

func TestParseArgs_MissingValue(t *testing.T) {
	_, err := driver.ParseArgs([]string{"-d"})
	require.ErrorIs(t, err, driver.ErrUsage)
}

func TestParseArgs_BadInstances(t *testing.T) {
	_, err := driver.ParseArgs([]string{"-i", "abc"})
	require.ErrorIs(t, err, driver.ErrUsage)

	_, err = driver.ParseArgs([]string{"-i", "x-4"})
	require.ErrorIs(t, err, driver.ErrUsage)

	// start >= end is an invalid range.
	_, err = driver.ParseArgs([]string{"-i", "7-7"})
	require.ErrorIs(t, err, driver.ErrUsage)

	_, err = driver.ParseArgs([]string{"-i", "9-4"})
	require.ErrorIs(t, err, driver.ErrUsage)
}

func TestParseArgs_UnexpectedPositional(t *testing.T) {
	_, err := driver.ParseArgs([]string{"stray"})
	require.ErrorIs(t, err, driver.ErrUsage)
}

func TestParseArgs_Empty(t *testing.T) {
	p, err := driver.ParseArgs(nil)
	require.NoError(t, err)
	require.Empty(t, p.Instances)
	require.Empty(t, p.Algorithms)
}
