package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifesim/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct {
	report reportFlags
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the value of assets over time" }
func (*valueCmd) Usage() string {
	return `lsim value [-period <period>] [-currency <currency>] [-horizon <date>] [<asset>...]

  Displays the value of the given assets, or all the assets, one column per
  asset. A value is the contribution of the asset to the character net worth,
  in grams of gold unless a currency is given.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runValuation(&c.report, f.Args(), renderer.Value)
}

type streamCmd struct {
	report reportFlags
}

func (*streamCmd) Name() string     { return "stream" }
func (*streamCmd) Synopsis() string { return "display the cash flow of assets over time" }
func (*streamCmd) Usage() string {
	return `lsim stream [-period <period>] [-currency <currency>] [-horizon <date>] [<asset>...]

  Displays the cash flow produced by the given assets, or all the assets, one
  column per asset. Income is positive, expenses are negative. Monthly flows
  are summed over the period.
`
}

func (c *streamCmd) SetFlags(f *flag.FlagSet) { c.report.SetFlags(f) }

func (c *streamCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runValuation(&c.report, f.Args(), renderer.Stream)
}

// runValuation prints the measure m of the assets named names.
func runValuation(r *reportFlags, names []string, m renderer.Measure) subcommands.ExitStatus {
	cfg, err := r.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	assets, err := selectAssets(s.Character, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cur, err := cfg.currency(s.World)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	v, err := renderer.NewValuation(assets, cfg.horizon(s), m, cfg.Report.Period, cur)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing %s: %v\n", m, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ValuationMarkdown(v), cfg.Report.Plain)
	return subcommands.ExitSuccess
}
