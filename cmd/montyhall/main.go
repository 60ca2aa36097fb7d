package main

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	montyhall "github.com/timpalpant/go-montyhall"
)

var (
	params       = montyhall.DefaultParams()
	showProgress bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "montyhall",
	Short: "Monte Carlo simulator for the generalized Monty Hall problem",
	Long: "montyhall estimates the win probability of the stay and switch\n" +
		"strategies over many simulated games and compares the result against\n" +
		"the closed-form probabilities.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&params.Trials, "trials", params.Trials, "number of independent trials")
	flags.IntVar(&params.Doors, "doors", params.Doors, "total number of doors")
	flags.IntVar(&params.Opens, "opens", params.Opens, "number of doors the host opens")
	flags.IntVar(&params.Workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	flags.Int64Var(&params.Seed, "seed", 0, "random seed (0 = seed from the global source)")
	flags.BoolVar(&showProgress, "progress", false, "report progress on stderr during long runs")
	flags.BoolVar(&verbose, "verbose", false, "include run configuration and the theoretical advantage in the report")

	// glog registers its flags (-v, -logtostderr, ...) on the standard set.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
}

func run(ctx context.Context, out io.Writer) error {
	if showProgress {
		params.Progress = func(done, total int64) {
			fmt.Fprintf(os.Stderr, "\r%d / %d trials", done, total)
			if done == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	sim, err := montyhall.New(params)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	report, err := sim.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "simulation aborted")
	}

	render(out, report, verbose)
	return nil
}

// render writes the human-readable report. Verbosity is an explicit argument
// rather than ambient state so the renderer stays a pure function of its
// inputs.
func render(w io.Writer, r *montyhall.Report, verbose bool) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "doors: %d, opened by host: %d, trials: %d\n",
		r.Params.Doors, r.Params.Opens, r.Tally.Total())
	if verbose {
		p.Fprintf(w, "seed: %d, workers: %d\n", r.Params.Seed, r.Params.Workers)
	}
	for _, d := range []montyhall.Decision{montyhall.Stay, montyhall.Switch} {
		p.Fprintf(w, "%-6v  won %d, lost %d\n", d,
			r.Tally.Count(d, montyhall.Win), r.Tally.Count(d, montyhall.Lose))
	}
	p.Fprintf(w, "stay win ratio:    %s\n", ratio(p, r.StayRatio))
	p.Fprintf(w, "switch win ratio:  %s\n", ratio(p, r.SwitchRatio))
	p.Fprintf(w, "switch advantage:  %s\n", ratio(p, r.Advantage))
	p.Fprintf(w, "theoretical stay (pre-reveal):    %.6f\n", r.PreProb)
	p.Fprintf(w, "theoretical switch (post-reveal): %.6f\n", r.PostProb)
	if verbose {
		p.Fprintf(w, "theoretical advantage:            %.6f\n", r.PostProb/r.PreProb)
	}
	if r.ErrorDefined {
		p.Fprintf(w, "empirical error: %.6f\n", r.Error)
	} else {
		p.Fprintf(w, "empirical error: undefined\n")
	}
}

func ratio(p *message.Printer, r montyhall.Ratio) string {
	if !r.Defined {
		return "undefined"
	}
	return p.Sprintf("%.6f", r.Value)
}

func main() {
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		glog.Error(err)
		os.Exit(1)
	}
}
