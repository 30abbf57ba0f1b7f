// Package cmd implements the CLI application to simulate the personal finance of a character.
package cmd

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/etnz/lifesim"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application, in display order.
var Commands = []subcommands.Command{
	&assetsCmd{},
	&valueCmd{},
	&streamCmd{},
	&seriesCmd{},
	&checkCmd{},
	&queryCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&assetsCmd{}, "reports")
	c.Register(&valueCmd{}, "reports")
	c.Register(&streamCmd{}, "reports")
	c.Register(&seriesCmd{}, "reports")

	c.Register(&checkCmd{}, "scenario")
	c.Register(&queryCmd{}, "scenario")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("scenario", "scenario.json", "Path to the scenario file (json)")
var configFile = flag.String("config", "", "Path to the configuration file (yaml or json), defaults to "+defaultConfigFile+" if it exists")

// Verbose enables logging.
var Verbose = flag.Bool("v", false, "verbose output")

// DecodeScenario decodes the scenario from the app scenario file.
func DecodeScenario() (*lifesim.Scenario, error) {
	return lifesim.DecodeScenarioFile(*scenarioFile)
}

// absolute returns the absolute path of a file, or the path itself if it cannot be computed.
func absolute(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// selectAssets returns the assets named names, or all the assets when names is empty.
func selectAssets(c *lifesim.Character, names []string) ([]*lifesim.Asset, error) {
	if len(names) == 0 {
		return c.Assets, nil
	}
	assets := make([]*lifesim.Asset, 0, len(names))
	for _, name := range names {
		a := c.Asset(name)
		if a == nil {
			return nil, fmt.Errorf("unknown asset %q", name)
		}
		assets = append(assets, a)
	}
	return assets, nil
}
