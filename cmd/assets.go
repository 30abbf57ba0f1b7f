package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct {
	kind  string
	plain bool
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets of the character" }
func (*assetsCmd) Usage() string {
	return `lsim assets [-kind <kind>]

  Lists the assets owned by the character, optionally only the ones of a kind
  (stock, real-estate, commodity, saving, loan, job).
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Only list assets of this kind.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown.")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	assets := s.Character.Assets
	if c.kind != "" {
		kind, err := lifesim.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -kind: %v\n", err)
			return subcommands.ExitUsageError
		}
		assets = ofKind(assets, kind)
	}
	printMarkdown(renderer.AssetsMarkdown(assets), cfg.Report.Plain || c.plain)
	return subcommands.ExitSuccess
}

// ofKind returns the assets of kind k.
func ofKind(assets []*lifesim.Asset, k lifesim.Kind) []*lifesim.Asset {
	var selected []*lifesim.Asset
	for _, a := range assets {
		if a.Kind == k {
			selected = append(selected, a)
		}
	}
	return selected
}
