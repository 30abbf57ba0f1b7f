package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/date"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is read when no configuration file is given.
const defaultConfigFile = "lsim.yaml"

// Config represents the application configuration.
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Report     ReportConfig     `json:"report" yaml:"report"`
}

// SimulationConfig contains simulation parameters.
type SimulationConfig struct {
	// Horizon is the last day simulated for unsold assets, the end of the
	// scenario when zero.
	Horizon date.Date `json:"horizon,omitempty" yaml:"horizon,omitempty"`
}

// ReportConfig contains reporting parameters.
type ReportConfig struct {
	Period   date.Period `json:"period" yaml:"period"`
	Currency string      `json:"currency,omitempty" yaml:"currency,omitempty"` // grams of gold when empty
	Plain    bool        `json:"plain" yaml:"plain"`
}

// Default returns the configuration used without configuration file.
func Default() *Config {
	return &Config{Report: ReportConfig{Period: date.Monthly}}
}

// LoadFromFile loads configuration from a file, yaml or json.
// Values missing from the file keep their default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config %q (tried YAML and JSON): %w", path, errors.Join(err, jerr))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Report.Currency != "" && money.GetCurrency(c.Report.Currency) == nil {
		return fmt.Errorf("report.currency: unknown currency code %q", c.Report.Currency)
	}
	return nil
}

// LoadConfig loads the app configuration file.
//
// Without -config flag, the default configuration file is read if it
// exists, and the default configuration is used otherwise.
func LoadConfig() (*Config, error) {
	if *configFile != "" {
		return LoadFromFile(*configFile)
	}
	cfg, err := LoadFromFile(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no %s configuration file, using defaults", defaultConfigFile)
		return Default(), nil
	}
	return cfg, err
}

// horizon returns the last day simulated for scenario s.
func (c *Config) horizon(s *lifesim.Scenario) date.Date {
	if c.Simulation.Horizon.IsZero() {
		return s.Period.To
	}
	return c.Simulation.Horizon
}

// currency returns the report currency in w, or nil to report in grams of gold.
func (c *Config) currency(w *lifesim.World) (*lifesim.Currency, error) {
	if c.Report.Currency == "" {
		return nil, nil
	}
	cur := w.Currency(c.Report.Currency)
	if cur == nil {
		return nil, fmt.Errorf("currency %q is not defined in the scenario", c.Report.Currency)
	}
	return cur, nil
}
