package montyhall

// Tally accumulates trial counts keyed by (Decision, Outcome). The zero value
// is an empty tally. Each trial increments exactly one cell; once a run
// completes the tally is only read.
type Tally [numDecisions][numOutcomes]int64

func (t *Tally) add(d Decision, o Outcome) {
	t[d][o]++
}

// merge sums other into t. Merging is commutative and associative, so the
// final tally is invariant to how trials were sharded across workers.
func (t *Tally) merge(other Tally) {
	for d := range t {
		for o := range t[d] {
			t[d][o] += other[d][o]
		}
	}
}

// Count returns the number of trials that ended with the given decision and
// outcome.
func (t Tally) Count(d Decision, o Outcome) int64 {
	return t[d][o]
}

// Decided returns the number of trials in which the given decision was made,
// regardless of outcome.
func (t Tally) Decided(d Decision) int64 {
	return t[d][Lose] + t[d][Win]
}

// Total returns the number of trials recorded. It always equals the trial
// count of the run that produced the tally.
func (t Tally) Total() int64 {
	var n int64
	for d := range t {
		for o := range t[d] {
			n += t[d][o]
		}
	}
	return n
}
