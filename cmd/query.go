package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	first bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the scenario file with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `lsim query [-first] <jsonpath>

  Evaluates a JSONPath expression against the scenario file and prints the
  result as JSON. For instance:

    lsim query '$.character.assets[*].name'
    lsim query '$.character.assets[? @.kind=="loan"].end_date'

  With -first, only the first match of a list is printed.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.first, "first", false, "Print only the first match.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(*scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q format error: %v\n", *scenarioFile, err)
		return subcommands.ExitFailure
	}

	v, err := query(doc, f.Arg(0), c.first)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// query evaluates path on the decoded JSON document doc.
func query(doc any, path string, first bool) (any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// wildcards and filters always return a list, even for a single match.
	if list, ok := v.([]any); ok && first {
		if len(list) == 0 {
			return nil, fmt.Errorf("%q matches nothing", path)
		}
		v = list[0]
	}
	return v, nil
}
