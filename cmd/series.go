package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/renderer"
	"github.com/etnz/lifesim/timeseries"
	"github.com/google/subcommands"
)

type seriesCmd struct {
	currency  string
	country   string
	city      string
	commodity string
	field     string
	period    string
	plain     bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display a reference series of the world" }
func (*seriesCmd) Usage() string {
	return `lsim series (-currency <name> | -country <name> | -city <name> | -commodity <name>) [-field <field>] [-period <period>]

  Displays a reference series of a world entity. Fields are:

    currency:  interest_rate, inflation, units_per_gram (default)
    country:   stock_index (default)
    city:      sqm_housing_price (default), yearly_rent_to_price_index
    commodity: units_per_gram (default)

  The last sample of each period is displayed.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Name of the currency.")
	f.StringVar(&c.country, "country", "", "Name of the country.")
	f.StringVar(&c.city, "city", "", "Name of the city.")
	f.StringVar(&c.commodity, "commodity", "", "Name of the commodity.")
	f.StringVar(&c.field, "field", "", "Field of the entity.")
	f.StringVar(&c.period, "period", "", "Period samples are folded by (month, quarter, year). Defaults to report.period.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown.")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.period != "" {
		if cfg.Report.Period, err = date.ParsePeriod(c.period); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -period: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	entity, name, err := c.entity()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := DecodeScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	ts, field, err := lookupSeries(s.World, entity, name, c.field)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	title := fmt.Sprintf("%s %s", name, field)
	printMarkdown(renderer.SeriesMarkdown(title, ts, cfg.Report.Period, timeseries.Last, decimal4), cfg.Report.Plain || c.plain)
	return subcommands.ExitSuccess
}

// entity returns the kind and name of the selected entity.
func (c *seriesCmd) entity() (entity, name string, err error) {
	set := 0
	for _, e := range []struct{ entity, name string }{
		{"currency", c.currency},
		{"country", c.country},
		{"city", c.city},
		{"commodity", c.commodity},
	} {
		if e.name != "" {
			entity, name = e.entity, e.name
			set++
		}
	}
	if set != 1 {
		return "", "", errors.New("want exactly one of -currency, -country, -city or -commodity")
	}
	return entity, name, nil
}

// lookupSeries returns the field of the named entity, and the field name;
// an empty field selects the entity default field.
func lookupSeries(w *lifesim.World, entity, name, field string) (timeseries.TimeSeries, string, error) {
	var fields map[string]timeseries.TimeSeries
	var defaultField string
	switch entity {
	case "currency":
		c := w.Currency(name)
		if c == nil {
			return timeseries.TimeSeries{}, "", fmt.Errorf("unknown currency %q", name)
		}
		fields = map[string]timeseries.TimeSeries{
			"interest_rate":  c.InterestRate,
			"inflation":      c.Inflation,
			"units_per_gram": c.UnitsPerGram,
		}
		defaultField = "units_per_gram"
	case "country":
		c := w.Country(name)
		if c == nil {
			return timeseries.TimeSeries{}, "", fmt.Errorf("unknown country %q", name)
		}
		fields = map[string]timeseries.TimeSeries{"stock_index": c.StockIndex}
		defaultField = "stock_index"
	case "city":
		c := w.City(name)
		if c == nil {
			return timeseries.TimeSeries{}, "", fmt.Errorf("unknown city %q", name)
		}
		fields = map[string]timeseries.TimeSeries{
			"sqm_housing_price":          c.SqmHousingPrice,
			"yearly_rent_to_price_index": c.YearlyRentToPriceIndex,
		}
		defaultField = "sqm_housing_price"
	case "commodity":
		c := w.Commodity(name)
		if c == nil {
			return timeseries.TimeSeries{}, "", fmt.Errorf("unknown commodity %q", name)
		}
		fields = map[string]timeseries.TimeSeries{"units_per_gram": c.UnitsPerGram}
		defaultField = "units_per_gram"
	default:
		return timeseries.TimeSeries{}, "", fmt.Errorf("unknown entity %q", entity)
	}

	if field == "" {
		field = defaultField
	}
	ts, ok := fields[field]
	if !ok {
		return timeseries.TimeSeries{}, "", fmt.Errorf("%s has no field %q", entity, field)
	}
	if ts.Len() == 0 {
		return timeseries.TimeSeries{}, "", fmt.Errorf("%s %q has no %s series", entity, name, field)
	}
	return ts, field, nil
}

func decimal4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
