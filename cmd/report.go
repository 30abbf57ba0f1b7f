package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/lifesim/date"
)

// reportFlags are the flags shared by report commands. They override the
// configuration file.
type reportFlags struct {
	period   string
	currency string
	horizon  string
	plain    bool
}

func (r *reportFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "period", "", "Period samples are folded by (month, quarter, year). Defaults to report.period.")
	f.StringVar(&r.currency, "currency", "", "Currency of the report, instead of grams of gold. Defaults to report.currency.")
	f.StringVar(&r.horizon, "horizon", "", "Last day simulated for unsold assets. Defaults to simulation.horizon.")
	f.BoolVar(&r.plain, "plain", false, "Print raw markdown.")
}

// config loads the configuration and applies the flags on it.
func (r *reportFlags) config() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg, r.apply(cfg)
}

// apply overrides cfg with the flags that are set.
func (r *reportFlags) apply(cfg *Config) error {
	if r.period != "" {
		p, err := date.ParsePeriod(r.period)
		if err != nil {
			return fmt.Errorf("-period: %w", err)
		}
		cfg.Report.Period = p
	}
	if r.currency != "" {
		cfg.Report.Currency = r.currency
	}
	if r.horizon != "" {
		h, err := date.Parse(r.horizon)
		if err != nil {
			return fmt.Errorf("-horizon: %w", err)
		}
		cfg.Simulation.Horizon = h
	}
	cfg.Report.Plain = cfg.Report.Plain || r.plain
	return cfg.Validate()
}
