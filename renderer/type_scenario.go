package renderer

import (
	"fmt"

	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/date"
)

// Scenario is a struct to represent the overview of a scenario.
// Numbers are already formatted in their unit.
type Scenario struct {
	// Name of the world.
	Name  string    `json:"name"`
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`

	Currencies  []ScenarioCurrency  `json:"currencies"`
	Countries   []ScenarioCountry   `json:"countries"`
	Cities      []ScenarioCity      `json:"cities"`
	Commodities []ScenarioCommodity `json:"commodities"`

	Character ScenarioCharacter `json:"character"`
	// Warnings lists what looks suspicious in the scenario, but does not
	// prevent the simulation.
	Warnings []string `json:"warnings,omitempty"`
}

// ScenarioCurrency represents a currency at the start of the scenario.
type ScenarioCurrency struct {
	Name         string `json:"name"`
	InterestRate string `json:"interestRate"`
	UnitsPerGram string `json:"unitsPerGram"`
}

// ScenarioCountry represents a country.
type ScenarioCountry struct {
	Name            string `json:"name"`
	Currency        string `json:"currency"`
	AcquisitionCost string `json:"acquisitionCost"`
}

// ScenarioCity represents a city housing market at the start of the scenario.
type ScenarioCity struct {
	Name            string `json:"name"`
	Country         string `json:"country"`
	SqmHousingPrice string `json:"sqmHousingPrice"`
}

// ScenarioCommodity represents a commodity at the start of the scenario.
type ScenarioCommodity struct {
	Name         string `json:"name"`
	UnitsPerGram string `json:"unitsPerGram"`
}

// ScenarioCharacter represents the character.
type ScenarioCharacter struct {
	Name           string    `json:"name"`
	InitialCapital string    `json:"initialCapital"`
	Start          date.Date `json:"start"`
	EndOfLife      date.Date `json:"endOfLife"`
	Assets         int       `json:"assets"`
}

// NewScenario creates a new Scenario overview from a decoded scenario.
//
// Every asset is valued up to horizon, failures are reported as warnings.
func NewScenario(s *lifesim.Scenario, horizon date.Date) *Scenario {
	w := s.World
	r := &Scenario{
		Name:  w.Name,
		Start: s.Period.From,
		End:   s.Period.To,
	}
	for _, c := range w.Currencies {
		r.Currencies = append(r.Currencies, ScenarioCurrency{
			Name:         c.Name,
			InterestRate: percent(c.InterestRate.First() * 100),
			UnitsPerGram: fmt.Sprintf("%.2f", c.UnitsPerGram.First()),
		})
	}
	for _, c := range w.Countries {
		r.Countries = append(r.Countries, ScenarioCountry{
			Name:            c.Name,
			Currency:        c.Currency.Name,
			AcquisitionCost: percent(c.RealEstateAcquisitionCostPercentage),
		})
	}
	for _, c := range w.Cities {
		r.Cities = append(r.Cities, ScenarioCity{
			Name:            c.Name,
			Country:         c.Country.Name,
			SqmHousingPrice: lifesim.M(c.SqmHousingPrice.First(), c.Country.Currency.Name).String(),
		})
	}
	for _, c := range w.Commodities {
		r.Commodities = append(r.Commodities, ScenarioCommodity{
			Name:         c.Name,
			UnitsPerGram: fmt.Sprintf("%.2f", c.UnitsPerGram.First()),
		})
	}

	c := s.Character
	r.Character = ScenarioCharacter{
		Name:           c.Name,
		InitialCapital: lifesim.Grams(c.InitialCapitalGrams),
		Start:          c.StartInvestmentDate,
		EndOfLife:      c.EndOfLife,
		Assets:         len(c.Assets),
	}
	r.Warnings = check(s, horizon)
	return r
}

// check lists the warnings of a scenario.
func check(s *lifesim.Scenario, horizon date.Date) []string {
	var warnings []string
	c := s.Character
	for _, a := range c.Assets {
		if a.PurchaseDate.Before(c.StartInvestmentDate) {
			warnings = append(warnings, fmt.Sprintf("asset %q is purchased on %s, before the character starts investing on %s", a.Name, a.PurchaseDate, c.StartInvestmentDate))
		}
		if !s.Period.Contains(a.PurchaseDate) {
			warnings = append(warnings, fmt.Sprintf("asset %q is purchased on %s, outside of the scenario %s", a.Name, a.PurchaseDate, s.Period))
		}
		if _, err := a.Value(horizon); err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot value: %v", err))
			continue
		}
		if _, err := a.Stream(horizon); err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot compute the stream: %v", err))
		}
	}
	if horizon.After(c.EndOfLife) {
		warnings = append(warnings, fmt.Sprintf("horizon %s is after the end of life %s", horizon, c.EndOfLife))
	}
	return warnings
}

func percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }
