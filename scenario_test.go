package lifesim

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

func TestDecodeScenarioFile(t *testing.T) {
	s, err := DecodeScenarioFile("testdata/scenario.json")
	if err != nil {
		t.Fatalf("DecodeScenarioFile() error = %v", err)
	}
	if got, want := s.Period, (date.Range{From: date.New(2024, 1, 1), To: date.New(2025, 12, 31)}); got != want {
		t.Errorf("Period = %v, want %v", got, want)
	}
	if got := len(s.World.Currencies); got != 2 {
		t.Errorf("len(Currencies) = %v, want 2", got)
	}
	eur := s.World.Currency("EUR")
	if eur == nil {
		t.Fatalf("Currency(%q) = nil", "EUR")
	}
	// Sparse points are carried forward month by month.
	for _, tc := range []struct {
		on   date.Date
		want float64
	}{
		{date.New(2024, 1, 1), 60.5},
		{date.New(2024, 5, 1), 60.5},
		{date.New(2024, 6, 1), 65},
		{date.New(2025, 1, 1), 70},
		{date.New(2025, 12, 1), 70},
	} {
		if got, err := eur.UnitsPerGram.At(tc.on); err != nil || got != tc.want {
			t.Errorf("EUR.UnitsPerGram.At(%v) = %v, %v want %v", tc.on, got, err, tc.want)
		}
	}
	if s.World.City("Berlin").Country != s.World.Country("DE") {
		t.Errorf("Berlin is not resolved to DE")
	}

	c := s.Character
	if c.Name != "John Doe" || len(c.Assets) != 6 {
		t.Errorf("Character = %q with %d assets, want %q with 6", c.Name, len(c.Assets), "John Doe")
	}
	flat := c.Asset("flat")
	if flat == nil || flat.Kind != KindRealEstate || flat.RealEstate.City != s.World.City("Berlin") {
		t.Errorf("Asset(%q) = %+v, want a real estate in Berlin", "flat", flat)
	}

	// Every asset can be valued over the scenario.
	for _, a := range c.Assets {
		if _, err := a.Value(s.Period.To); err != nil {
			t.Errorf("%s.Value() error = %v", a.Name, err)
		}
		if _, err := a.Stream(s.Period.To); err != nil {
			t.Errorf("%s.Stream() error = %v", a.Name, err)
		}
	}
}

func TestDecodeScenarioErrors(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want string
	}{
		{"syntax", `{`, "format error"},
		{"unknown field", `{"planet": "Mars"}`, "unknown field"},
		{"reversed period", `{"start": "2025-01-01", "end": "2024-01-01"}`, "later than"},
		{"two generators", `{"start": "2024-01-01", "end": "2024-12-31",
			"commodities": [{"name": "silver", "units_per_gram": {"constant": 1, "samples": [1]}}]}`, "exactly one"},
		{"missing series", `{"start": "2024-01-01", "end": "2024-12-31",
			"commodities": [{"name": "silver"}]}`, "missing series"},
		{"bad samples", `{"start": "2024-01-01", "end": "2024-12-31",
			"commodities": [{"name": "silver", "units_per_gram": {"samples": [1, 2]}}]}`, "got 2 samples"},
		{"unknown currency code", `{"start": "2024-01-01", "end": "2024-12-31",
			"currencies": [{"name": "XYZ", "interest_rate": {"constant": 0}, "units_per_gram": {"constant": 1}}]}`, "unknown currency code"},
		{"unknown country", `{"start": "2024-01-01", "end": "2024-12-31",
			"cities": [{"name": "Paris", "country": "FR", "sqm_housing_price": {"constant": 1}, "yearly_rent_to_price_index": {"constant": 1}}]}`, `unknown country "FR"`},
		{"unknown kind", `{"start": "2024-01-01", "end": "2024-12-31",
			"currencies": [{"name": "EUR", "interest_rate": {"constant": 0}, "units_per_gram": {"constant": 1}}],
			"character": {"end_of_life": "2024-12-31", "assets": [{"name": "b", "kind": "bond", "currency": "EUR"}]}}`, "unknown asset kind"},
		{"loan without end", `{"start": "2024-01-01", "end": "2024-12-31",
			"currencies": [{"name": "EUR", "interest_rate": {"constant": 0}, "units_per_gram": {"constant": 1}}],
			"character": {"end_of_life": "2024-12-31", "assets": [{"name": "l", "kind": "loan", "currency": "EUR"}]}}`, "requires an end_date"},
		{"real estate in a foreign currency", `{"start": "2024-01-01", "end": "2024-12-31",
			"currencies": [{"name": "EUR", "interest_rate": {"constant": 0}, "units_per_gram": {"constant": 10}},
				{"name": "USD", "interest_rate": {"constant": 0}, "units_per_gram": {"constant": 1}}],
			"countries": [{"name": "DE", "currency": "EUR", "stock_index": {"constant": 1}}],
			"cities": [{"name": "Berlin", "country": "DE", "sqm_housing_price": {"constant": 1000}, "yearly_rent_to_price_index": {"constant": 0.04}}],
			"character": {"end_of_life": "2024-12-31", "assets": [{"name": "flat", "kind": "real-estate", "currency": "USD",
				"city": "Berlin", "surface_sqm": 1, "purchase_date": "2024-01-01"}]}}`, "Berlin real estate is priced in EUR"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeScenario(strings.NewReader(tc.json))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("DecodeScenario() error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestDecodeScenarioCharacterDates(t *testing.T) {
	_, err := DecodeScenario(strings.NewReader(`{"start": "2024-01-01", "end": "2024-12-31",
		"character": {"name": "John", "start_investment_date": "2024-01-31", "end_of_life": "2024-01-30"}}`))
	if !errors.Is(err, timeseries.ErrDateOrder) {
		t.Errorf("DecodeScenario() error = %v, want %v", err, timeseries.ErrDateOrder)
	}
}
