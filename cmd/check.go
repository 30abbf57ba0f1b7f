package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifesim/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	report reportFlags
	strict bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the scenario and display an overview" }
func (*checkCmd) Usage() string {
	return `lsim check [-strict] [-horizon <date>]

  Decodes the scenario, reporting all the errors at once, then values every
  asset up to the horizon and displays an overview of the world and the
  character, with warnings.

  With -strict, warnings make the command fail.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.report.SetFlags(f)
	f.BoolVar(&c.strict, "strict", false, "Fail when there are warnings.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.report.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	overview := renderer.NewScenario(s, cfg.horizon(s))
	printMarkdown(renderer.RenderScenario(overview), cfg.Report.Plain)
	if c.strict && len(overview.Warnings) > 0 {
		fmt.Fprintf(os.Stderr, "%d warnings\n", len(overview.Warnings))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
