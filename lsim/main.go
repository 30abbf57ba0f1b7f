// Command lsim simulates the personal finance of a character, month by month.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/lifesim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	// Performs shell completion when requested by the shell, and exits.
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a builtin command.
func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"scenario": predict.Files("*.json"),
			"config":   predict.Files("*.y*ml"),
			"v":        predict.Nothing,
		},
	}
	known := map[string]complete.Predictor{
		"period":  predict.Set{"month", "quarter", "year"},
		"kind":    predict.Set{"stock", "real-estate", "commodity", "saving", "loan", "job"},
		"field":   predict.Set{"interest_rate", "inflation", "units_per_gram", "stock_index", "sqm_housing_price", "yearly_rent_to_price_index"},
		"horizon": predict.Something,
	}
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			switch p, ok := known[f.Name]; {
			case ok:
				sub.Flags[f.Name] = p
			case isBool(f):
				sub.Flags[f.Name] = predict.Nothing
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	return root
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
