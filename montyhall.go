// Package montyhall estimates win probabilities for the generalized
// Monty Hall problem by Monte Carlo simulation: one prize behind many doors,
// the host opens some of the others after the contestant's first pick, and
// the contestant either stays or switches. Each trial is sampled in O(1) by
// closed-form case analysis rather than by manipulating a door collection.
package montyhall

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// progressBatch is the number of trials a worker runs between updates to the
// shared progress counter and cancellation checks.
const progressBatch = 1 << 14

// progressInterval is how often an installed ProgressFunc is notified.
const progressInterval = time.Second

// Simulator runs independent trials of the generalized Monty Hall game and
// tallies the outcomes per strategy.
type Simulator struct {
	params Params
	rngs   []*rand.Rand
}

// New validates params and returns a Simulator ready to run. Invalid
// parameters are a configuration error: they are reported here, once, and no
// trial is ever attempted.
func New(params Params) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	workers := params.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > params.Trials {
		workers = params.Trials
	}

	// Each worker owns an independently seeded stream so that shards are
	// statistically independent. A nonzero Seed pins the derivation for
	// reproducible runs.
	seed := params.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	seeder := rand.New(rand.NewSource(seed))
	rngs := make([]*rand.Rand, workers)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(seeder.Int63()))
	}

	return &Simulator{
		params: params,
		rngs:   rngs,
	}, nil
}

// Run simulates the configured number of trials, sharded across the
// configured workers, and returns the derived Report. Trials are i.i.d., so
// the result distribution does not depend on the sharding. Run returns
// ctx.Err() if the context ends before all trials complete.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	total := int64(s.params.Trials)
	var done int64

	if s.params.Progress != nil {
		stop := make(chan struct{})
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			notifyProgress(s.params.Progress, &done, total, stop)
		}()
		// Deliver the final notification before Run returns.
		defer func() { <-finished }()
		defer close(stop)
	}

	g, ctx := errgroup.WithContext(ctx)
	partials := make([]Tally, len(s.rngs))
	for i, n := range shardSizes(s.params.Trials, len(s.rngs)) {
		i, n := i, n
		g.Go(func() error {
			rng := s.rngs[i]
			var tally Tally
			for remaining := n; remaining > 0; {
				batch := progressBatch
				if remaining < batch {
					batch = remaining
				}
				for j := 0; j < batch; j++ {
					d, o := sampleTrial(rng, s.params.Doors, s.params.Opens)
					tally.add(d, o)
				}
				remaining -= batch
				atomic.AddInt64(&done, int64(batch))

				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}

			glog.V(2).Infof("Worker %d completed %d trials", i, n)
			partials[i] = tally
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var tally Tally
	for _, p := range partials {
		tally.merge(p)
	}

	report := deriveReport(s.params, tally)
	glog.V(1).Infof("Completed %d trials: stay %v, switch %v",
		tally.Total(), report.StayRatio, report.SwitchRatio)
	return report, nil
}

// shardSizes splits trials as evenly as possible across workers.
func shardSizes(trials, workers int) []int {
	sizes := make([]int, workers)
	base := trials / workers
	rem := trials % workers
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

func notifyProgress(fn ProgressFunc, done *int64, total int64, stop <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			fn(atomic.LoadInt64(done), total)
		case <-stop:
			fn(atomic.LoadInt64(done), total)
			return
		}
	}
}
