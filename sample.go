package montyhall

// sampleTrial plays one trial and returns the contestant's decision and its
// outcome, using O(1) work regardless of the number of doors.
//
// Doors are numbered 1..doors. The contestant's first pick is fixed to door 1:
// the prize position is independently uniform over all doors, so by symmetry
// the identity of the first pick carries no information and the outcome
// distribution is unchanged. This invariant is what lets the host's reveal be
// resolved by case analysis on ranges instead of by materializing the door
// set; it holds only while prize placement and the host's reveal policy stay
// uniform.
//
// The caller is responsible for validating doors and opens; sampleTrial does
// not re-check them on the hot path.
func sampleTrial(rng Rand, doors, opens int) (Decision, Outcome) {
	car := 1 + rng.Intn(doors)

	if rng.Intn(2) == 0 {
		// Stay: the final choice is the first pick.
		if car == 1 {
			return Stay, Win
		}
		return Stay, Lose
	}

	// Switch. If the first pick already hid the prize, any switch loses and
	// the host's reveal is irrelevant; no further randomness is consumed.
	if car == 1 {
		return Switch, Lose
	}

	// remaining doors after the reveal, including door 1. The host never
	// opens door 1 or the prize door, so exactly remaining-1 switch
	// candidates survive.
	remaining := doors - opens

	if car <= remaining {
		// The prize sits inside the surviving low range, so the candidates
		// are the contiguous block [2, remaining].
		target := 2 + rng.Intn(remaining-1)
		if target == car {
			return Switch, Win
		}
		return Switch, Lose
	}

	// The prize is outside the low range but guaranteed to survive the
	// reveal. Candidates are [2, remaining-1] plus the prize door itself;
	// sample an index over that union.
	i := rng.Intn(remaining - 1)
	if i == remaining-2 {
		return Switch, Win // the index mapping to the prize door
	}
	return Switch, Lose
}

// switchCandidates is the number of unopened non-first doors a switching
// contestant may land on.
func switchCandidates(doors, opens int) int {
	return doors - opens - 1
}
