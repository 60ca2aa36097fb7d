package montyhall

import (
	"github.com/pkg/errors"
)

// Defaults used by DefaultParams and the montyhall CLI.
const (
	DefaultTrials = 100000
	DefaultDoors  = 3
	DefaultOpens  = 1
)

// Params are the configuration options for a simulation run.
type Params struct {
	// Trials is the number of independent trials to simulate. Must be > 0.
	Trials int
	// Doors is the total number of doors. Must be >= 3.
	Doors int
	// Opens is the number of doors the host opens after the contestant's
	// first pick. Must satisfy 0 <= Opens <= Doors-2 so that at least the
	// contestant's pick and one alternative remain unopened.
	Opens int

	// Workers is the number of goroutines to shard trials across.
	// Zero means GOMAXPROCS.
	Workers int
	// Seed makes the run reproducible when nonzero. Each worker derives an
	// independent stream from it. Zero seeds from the global source.
	Seed int64
	// Progress, if set, receives periodic (done, total) notifications.
	Progress ProgressFunc
}

// DefaultParams returns the classical configuration: 3 doors, 1 reveal,
// 100,000 trials.
func DefaultParams() Params {
	return Params{
		Trials: DefaultTrials,
		Doors:  DefaultDoors,
		Opens:  DefaultOpens,
	}
}

// Validate checks the trial parameters once, before any simulation work.
// A violation is a configuration error: the run must not proceed.
func (p Params) Validate() error {
	if p.Trials <= 0 {
		return errors.Errorf("trials must be positive, got %d", p.Trials)
	}
	if p.Doors < 3 {
		return errors.Errorf("need at least 3 doors, got %d", p.Doors)
	}
	if p.Opens < 0 {
		return errors.Errorf("host cannot open %d doors", p.Opens)
	}
	if p.Opens > p.Doors-2 {
		return errors.Errorf("host may open at most %d of %d doors, got %d",
			p.Doors-2, p.Doors, p.Opens)
	}
	if p.Workers < 0 {
		return errors.Errorf("workers must be >= 0, got %d", p.Workers)
	}
	return nil
}
