// Package naive implements the obviously-correct reference simulation of the
// generalized Monty Hall game. It materializes the full door set, opens doors
// one at a time, and samples the switch target from what remains, costing
// O(doors) per trial. It exists to cross-validate the optimized closed-form
// sampler; it is not used outside of tests.
package naive

// Rand is the subset of math/rand.Rand the simulation needs.
type Rand interface {
	Intn(n int) int
}

// SampleTrial plays one trial with an explicit door collection and reports
// whether the contestant switched and whether they won. Unlike the optimized
// sampler, the first pick is genuinely random rather than canonicalized, so
// agreement between the two also exercises the symmetry argument the
// optimization rests on.
func SampleTrial(rng Rand, doors, opens int) (switched, won bool) {
	car := rng.Intn(doors)
	pick := rng.Intn(doors)
	switched = rng.Intn(2) == 1

	if !switched {
		return false, pick == car
	}

	// All doors except the contestant's pick start closed.
	closed := make([]int, 0, doors-1)
	for d := 0; d < doors; d++ {
		if d != pick {
			closed = append(closed, d)
		}
	}

	// The host opens doors uniformly at random, never revealing the prize.
	for i := 0; i < opens; i++ {
		j := rng.Intn(len(closed))
		for closed[j] == car {
			j = rng.Intn(len(closed))
		}
		closed = append(closed[:j], closed[j+1:]...)
	}

	target := closed[rng.Intn(len(closed))]
	return true, target == car
}
