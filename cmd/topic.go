package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifesim/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	plain bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `lsim topic [<topic>...]

Show documentation for the given topics, '*' for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc, c.plain)

	return subcommands.ExitSuccess
}
