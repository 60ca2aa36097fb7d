package montyhall

// Decision is the strategy a contestant follows after the host's reveal.
type Decision int

const (
	// Stay keeps the contestant's original pick.
	Stay Decision = iota
	// Switch moves to a different unopened door.
	Switch
	numDecisions
)

func (d Decision) String() string {
	switch d {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	}
	return "unknown"
}

// Outcome is the result of a single trial.
type Outcome int

const (
	// Lose means the contestant's final door did not hide the prize.
	Lose Outcome = iota
	// Win means the contestant's final door hid the prize.
	Win
	numOutcomes
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Win:
		return "win"
	}
	return "unknown"
}

// Rand is the source of randomness used to sample trials.
//
// Intn must return a uniform integer in [0, n). The simulator only requires
// uniformity and independence across calls; it is agnostic to the generator.
// *math/rand.Rand satisfies Rand.
type Rand interface {
	Intn(n int) int
}

// ProgressFunc receives periodic progress notifications during a long run.
// It is purely observational and has no effect on results.
type ProgressFunc func(done, total int64)
