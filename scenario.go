package lifesim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

// Scenario is the initial state of a simulation: the world reference data
// and the character living in it.
type Scenario struct {
	Period    date.Range
	World     *World
	Character *Character
}

// This file decodes scenarios from json. The json representation uses
// dedicated local structs with tag annotations, and names to reference
// world entities; decoding resolves those names.
//
// Reference series are not listed sample by sample, they are described by a
// generator (see jgenerator).

// jgenerator describes a series. Exactly one generator must be set.
type jgenerator struct {
	Start    *date.Date `json:"start,omitempty"`
	End      *date.Date `json:"end,omitempty"`
	Constant *float64   `json:"constant,omitempty"`
	Linear   *struct {
		Intercept float64 `json:"intercept"`
		Slope     float64 `json:"slope"`
	} `json:"linear,omitempty"`
	Compound *struct {
		Initial float64 `json:"initial"`
		Rate    float64 `json:"rate"`
	} `json:"compound,omitempty"`
	Samples []float64             `json:"samples,omitempty"`
	Points  map[date.Date]float64 `json:"points,omitempty"`
}

// series builds the described series, over period unless the generator overrides its bounds.
func (g *jgenerator) series(period date.Range) (timeseries.TimeSeries, error) {
	if g == nil {
		return timeseries.TimeSeries{}, errors.New("missing series")
	}
	start, end := period.From, period.To
	if g.Start != nil {
		start = *g.Start
	}
	if g.End != nil {
		end = *g.End
	}

	set := 0
	for _, ok := range []bool{g.Constant != nil, g.Linear != nil, g.Compound != nil, g.Samples != nil, g.Points != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return timeseries.TimeSeries{}, fmt.Errorf("want exactly one of constant, linear, compound, samples or points, got %d", set)
	}

	switch {
	case g.Constant != nil:
		return timeseries.Constant(*g.Constant, start, end)
	case g.Linear != nil:
		return timeseries.Linear(g.Linear.Intercept, g.Linear.Slope, start, end)
	case g.Compound != nil:
		return timeseries.Compound(g.Compound.Initial, g.Compound.Rate, start, end)
	case g.Samples != nil:
		return timeseries.New(start, end, g.Samples)
	default:
		h := new(date.History[float64])
		for on, v := range g.Points {
			h.Append(on, v)
		}
		return timeseries.FromHistory(h, start, end)
	}
}

type jcurrency struct {
	Name         string      `json:"name"`
	InterestRate *jgenerator `json:"interest_rate"`
	Inflation    *jgenerator `json:"inflation,omitempty"`
	UnitsPerGram *jgenerator `json:"units_per_gram"`
}

type jcountry struct {
	Name                  string      `json:"name"`
	Currency              string      `json:"currency"`
	AcquisitionPercentage float64     `json:"real_estate_acquisition_cost_percentage"`
	StockIndex            *jgenerator `json:"stock_index"`
}

type jcity struct {
	Name                   string      `json:"name"`
	Country                string      `json:"country"`
	SqmHousingPrice        *jgenerator `json:"sqm_housing_price"`
	YearlyRentToPriceIndex *jgenerator `json:"yearly_rent_to_price_index"`
}

type jcommodity struct {
	Name         string      `json:"name"`
	UnitsPerGram *jgenerator `json:"units_per_gram"`
}

type jasset struct {
	Name          string     `json:"name"`
	Kind          string     `json:"kind"`
	InitialValue  float64    `json:"initial_value"`
	PurchaseDate  date.Date  `json:"purchase_date"`
	SaleDate      *date.Date `json:"sale_date,omitempty"`
	Currency      string     `json:"currency"`
	Country       string     `json:"country,omitempty"`
	City          string     `json:"city,omitempty"`
	SurfaceSqm    float64    `json:"surface_sqm,omitempty"`
	Commodity     string     `json:"commodity,omitempty"`
	EndDate       *date.Date `json:"end_date,omitempty"`
	MonthlySaving float64    `json:"monthly_saving,omitempty"`
}

type jcharacter struct {
	Name                string    `json:"name"`
	InitialCapitalGrams float64   `json:"initial_capital_grams"`
	StartInvestmentDate date.Date `json:"start_investment_date"`
	EndOfLife           date.Date `json:"end_of_life"`
	Assets              []jasset  `json:"assets"`
}

type jscenario struct {
	Name        string       `json:"name"`
	Start       date.Date    `json:"start"`
	End         date.Date    `json:"end"`
	Currencies  []jcurrency  `json:"currencies"`
	Countries   []jcountry   `json:"countries"`
	Cities      []jcity      `json:"cities"`
	Commodities []jcommodity `json:"commodities"`
	Character   jcharacter   `json:"character"`
}

// DecodeScenario reads a json scenario.
//
// All the problems found while resolving the scenario are reported together.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	var js jscenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("format error in scenario: %w", err)
	}
	if js.End.Before(js.Start) {
		return nil, fmt.Errorf("scenario period: %w", &timeseries.DateOrderError{Start: js.Start, End: js.End})
	}
	period := date.Range{From: js.Start, To: js.End}
	w := &World{Name: js.Name}

	var errs error
	// series builds a series and records the error with its location.
	series := func(location string, g *jgenerator) timeseries.TimeSeries {
		ts, err := g.series(period)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", location, err))
		}
		return ts
	}

	for _, jc := range js.Currencies {
		c := &Currency{
			Name:         jc.Name,
			InterestRate: series(fmt.Sprintf("currency %q interest_rate", jc.Name), jc.InterestRate),
			UnitsPerGram: series(fmt.Sprintf("currency %q units_per_gram", jc.Name), jc.UnitsPerGram),
		}
		if jc.Inflation != nil {
			c.Inflation = series(fmt.Sprintf("currency %q inflation", jc.Name), jc.Inflation)
		}
		w.Currencies = append(w.Currencies, c)
	}
	for _, jc := range js.Countries {
		c := &Country{
			Name:                                jc.Name,
			Currency:                            w.Currency(jc.Currency),
			RealEstateAcquisitionCostPercentage: jc.AcquisitionPercentage,
			StockIndex:                          series(fmt.Sprintf("country %q stock_index", jc.Name), jc.StockIndex),
		}
		if c.Currency == nil {
			errs = errors.Join(errs, fmt.Errorf("country %q: unknown currency %q", jc.Name, jc.Currency))
		}
		w.Countries = append(w.Countries, c)
	}
	for _, jc := range js.Cities {
		c := &City{
			Name:                   jc.Name,
			Country:                w.Country(jc.Country),
			SqmHousingPrice:        series(fmt.Sprintf("city %q sqm_housing_price", jc.Name), jc.SqmHousingPrice),
			YearlyRentToPriceIndex: series(fmt.Sprintf("city %q yearly_rent_to_price_index", jc.Name), jc.YearlyRentToPriceIndex),
		}
		if c.Country == nil {
			errs = errors.Join(errs, fmt.Errorf("city %q: unknown country %q", jc.Name, jc.Country))
		}
		w.Cities = append(w.Cities, c)
	}
	for _, jc := range js.Commodities {
		w.Commodities = append(w.Commodities, &Commodity{
			Name:         jc.Name,
			UnitsPerGram: series(fmt.Sprintf("commodity %q units_per_gram", jc.Name), jc.UnitsPerGram),
		})
	}
	if errs != nil {
		return nil, errs
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var assets []*Asset
	for _, ja := range js.Character.Assets {
		a, err := w.resolve(ja)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		assets = append(assets, a)
	}
	if errs != nil {
		return nil, errs
	}

	jc := js.Character
	c, err := NewCharacter(jc.Name, jc.InitialCapitalGrams, jc.StartInvestmentDate, jc.EndOfLife, assets...)
	if err != nil {
		return nil, fmt.Errorf("character %q: %w", jc.Name, err)
	}
	return &Scenario{Period: period, World: w, Character: c}, nil
}

// resolve builds an Asset, resolving the world entities it references.
func (w *World) resolve(ja jasset) (*Asset, error) {
	kind, err := ParseKind(ja.Kind)
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", ja.Name, err)
	}
	a := &Asset{
		Name:         ja.Name,
		Kind:         kind,
		InitialValue: ja.InitialValue,
		PurchaseDate: ja.PurchaseDate,
		Currency:     w.Currency(ja.Currency),
	}
	if ja.SaleDate != nil {
		a.SaleDate = *ja.SaleDate
	}
	if a.Currency == nil {
		return nil, fmt.Errorf("asset %q: unknown currency %q", ja.Name, ja.Currency)
	}

	switch kind {
	case KindStock:
		country := w.Country(ja.Country)
		if country == nil {
			return nil, fmt.Errorf("asset %q: unknown country %q", ja.Name, ja.Country)
		}
		a.Stock = &Stock{Country: country}
	case KindRealEstate:
		city := w.City(ja.City)
		if city == nil {
			return nil, fmt.Errorf("asset %q: unknown city %q", ja.Name, ja.City)
		}
		a.RealEstate = &RealEstate{City: city, SurfaceSqm: ja.SurfaceSqm}
	case KindCommodity:
		commodity := w.Commodity(ja.Commodity)
		if commodity == nil {
			return nil, fmt.Errorf("asset %q: unknown commodity %q", ja.Name, ja.Commodity)
		}
		a.Commodity = &CommodityBundle{Commodity: commodity}
	case KindSaving:
		a.Saving = &Saving{}
	case KindLoan:
		if ja.EndDate == nil {
			return nil, fmt.Errorf("asset %q: a loan requires an end_date", ja.Name)
		}
		a.Loan = &Loan{EndDate: *ja.EndDate}
	case KindJob:
		a.Job = &Job{MonthlySaving: ja.MonthlySaving}
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeScenarioFile reads a json scenario from a file.
func DecodeScenarioFile(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	s, err := DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", filename, err)
	}
	if len(s.Character.Assets) == 0 {
		log.Printf("warning: scenario %q has no assets", filename)
	}
	return s, nil
}
