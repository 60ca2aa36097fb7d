package montyhall

import (
	"strconv"
)

// Ratio is a win ratio that may be undefined. A ratio is undefined when its
// strategy was never sampled, which can only happen for vanishingly small
// trial counts. Representing that case explicitly keeps degenerate statistics
// from surfacing as a division fault.
type Ratio struct {
	Value   float64
	Defined bool
}

func definedRatio(num, denom int64) Ratio {
	if denom == 0 {
		return Ratio{}
	}
	return Ratio{Value: float64(num) / float64(denom), Defined: true}
}

func (r Ratio) String() string {
	if !r.Defined {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Report carries the inputs, the raw tally, and every statistic derived from
// a completed run.
type Report struct {
	Params Params
	Tally  Tally

	// Empirical win ratios per strategy.
	StayRatio   Ratio
	SwitchRatio Ratio
	// Advantage is SwitchRatio / StayRatio. It is undefined whenever either
	// ratio is, or when no staying contestant ever won.
	Advantage Ratio

	// PreProb is the theoretical pre-reveal correct-guess probability, 1/doors.
	PreProb float64
	// PostProb is the theoretical post-reveal switch-win probability,
	// ((doors-1)/(doors-opens-1))/doors.
	PostProb float64

	// Error is the mean absolute deviation of the empirical ratios from
	// their theoretical values. Defined only when both ratios are.
	Error        float64
	ErrorDefined bool
}

// deriveReport computes every derived statistic once, from the final tally.
func deriveReport(params Params, tally Tally) *Report {
	r := &Report{
		Params:      params,
		Tally:       tally,
		StayRatio:   definedRatio(tally.Count(Stay, Win), tally.Decided(Stay)),
		SwitchRatio: definedRatio(tally.Count(Switch, Win), tally.Decided(Switch)),
		PreProb:     1 / float64(params.Doors),
		PostProb:    (float64(params.Doors-1) / float64(params.Doors-params.Opens-1)) / float64(params.Doors),
	}

	if r.StayRatio.Defined && r.SwitchRatio.Defined {
		diff := (r.SwitchRatio.Value - r.PostProb) + (r.StayRatio.Value - r.PreProb)
		if diff < 0 {
			diff = -diff
		}
		r.Error = diff / 2
		r.ErrorDefined = true

		if r.StayRatio.Value > 0 {
			r.Advantage = Ratio{Value: r.SwitchRatio.Value / r.StayRatio.Value, Defined: true}
		}
	}

	return r
}
