package lifesim

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/lifesim/timeseries"
)

// Currency holds the reference series of a currency.
type Currency struct {
	Name         string                // ISO 4217 code
	InterestRate timeseries.TimeSeries // yearly rate, 0.03 for 3%
	Inflation    timeseries.TimeSeries // yearly rate
	UnitsPerGram timeseries.TimeSeries // units of currency per gram of gold
}

// ToGold converts a series expressed in this currency into grams of gold.
func (c *Currency) ToGold(ts timeseries.TimeSeries) (timeseries.TimeSeries, error) {
	g, err := ts.Div(c.UnitsPerGram)
	if err != nil {
		return g, fmt.Errorf("converting %s to gold: %w", c.Name, err)
	}
	return g, nil
}

// FromGold converts a series expressed in grams of gold into this currency.
func (c *Currency) FromGold(ts timeseries.TimeSeries) (timeseries.TimeSeries, error) {
	v, err := ts.Mul(c.UnitsPerGram)
	if err != nil {
		return v, fmt.Errorf("converting gold to %s: %w", c.Name, err)
	}
	return v, nil
}

// Validate checks that the currency is a known ISO 4217 currency.
func (c *Currency) Validate() error {
	if money.GetCurrency(c.Name) == nil {
		return fmt.Errorf("unknown currency code %q", c.Name)
	}
	return nil
}

// Country defines country specific indicators.
type Country struct {
	Name     string
	Currency *Currency
	// RealEstateAcquisitionCostPercentage is the share of a real estate
	// price paid as taxes and fees when buying it.
	RealEstateAcquisitionCostPercentage float64
	// StockIndex is the level of the main stock index, relative to an
	// arbitrary moment.
	StockIndex timeseries.TimeSeries
}

// City defines the housing market of a city.
type City struct {
	Name                   string
	Country                *Country
	SqmHousingPrice        timeseries.TimeSeries // in the country's currency
	YearlyRentToPriceIndex timeseries.TimeSeries // yearly rent over price, 0.04 for 4%
}

// Commodity is a commodity like gold, silver etc.
type Commodity struct {
	Name         string
	UnitsPerGram timeseries.TimeSeries // units of commodity per gram of gold
}

// World gathers the reference data of a simulation.
type World struct {
	Name        string
	Currencies  []*Currency
	Countries   []*Country
	Cities      []*City
	Commodities []*Commodity
}

// lookup returns the first item named name.
func lookup[T any](items []*T, name string, nameOf func(*T) string) *T {
	for _, item := range items {
		if nameOf(item) == name {
			return item
		}
	}
	return nil
}

// Currency returns the currency named name, or nil.
func (w *World) Currency(name string) *Currency {
	return lookup(w.Currencies, name, func(c *Currency) string { return c.Name })
}

// Country returns the country named name, or nil.
func (w *World) Country(name string) *Country {
	return lookup(w.Countries, name, func(c *Country) string { return c.Name })
}

// City returns the city named name, or nil.
func (w *World) City(name string) *City {
	return lookup(w.Cities, name, func(c *City) string { return c.Name })
}

// Commodity returns the commodity named name, or nil.
func (w *World) Commodity(name string) *Commodity {
	return lookup(w.Commodities, name, func(c *Commodity) string { return c.Name })
}

// Validate checks the world consistency: known and unique currencies, unique
// names, and references to entities of the same world.
//
// All the problems found are reported.
func (w *World) Validate() error {
	var errs error
	seen := make(map[string]bool)
	unique := func(kind, name string) {
		if seen[kind+"/"+name] {
			errs = errors.Join(errs, fmt.Errorf("%s %q is defined twice", kind, name))
		}
		seen[kind+"/"+name] = true
	}
	for _, c := range w.Currencies {
		unique("currency", c.Name)
		if err := c.Validate(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	for _, c := range w.Countries {
		unique("country", c.Name)
		if c.Currency == nil || w.Currency(c.Currency.Name) != c.Currency {
			errs = errors.Join(errs, fmt.Errorf("country %q: currency is not part of the world", c.Name))
		}
	}
	for _, c := range w.Cities {
		unique("city", c.Name)
		if c.Country == nil || w.Country(c.Country.Name) != c.Country {
			errs = errors.Join(errs, fmt.Errorf("city %q: country is not part of the world", c.Name))
		}
	}
	for _, c := range w.Commodities {
		unique("commodity", c.Name)
	}
	return errs
}
