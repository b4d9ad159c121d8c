// Package pancake - deterministic benchmark instances.
//
// Instances are derived, not tabulated: a SplitMix64-seeded
// Fisher–Yates shuffle turns (n, id) into the same permutation on
// every platform, which keeps benchmark runs reproducible without
// shipping instance files.
package pancake

// Instance returns the deterministic benchmark instance id for stacks
// of height n.
func Instance(n, id int) (State, error) {
	goal, err := Goal(n)
	if err != nil {
		return State{}, err
	}

	s := goal
	rng := splitMix64(uint64(id)*0x9e3779b97f4a7c15 + uint64(n))
	for i := n - 1; i > 0; i-- {
		j := int(rng() % uint64(i+1))
		s.Seq[i], s.Seq[j] = s.Seq[j], s.Seq[i]
	}

	return s, nil
}

// splitMix64 returns a deterministic stream of 64-bit values; the
// canonical constants give full-period avalanche mixing.
func splitMix64(seed uint64) func() uint64 {
	state := seed

	return func() uint64 {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb

		return z ^ (z >> 31)
	}
}
