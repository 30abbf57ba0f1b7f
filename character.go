package lifesim

import (
	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

// Character owns assets over a lifetime.
type Character struct {
	Name                string
	Assets              []*Asset
	InitialCapitalGrams float64
	StartInvestmentDate date.Date
	EndOfLife           date.Date
}

// NewCharacter returns a new Character, or a *timeseries.DateOrderError when
// endOfLife is before startInvestment.
func NewCharacter(name string, initialCapitalGrams float64, startInvestment, endOfLife date.Date, assets ...*Asset) (*Character, error) {
	if endOfLife.Before(startInvestment) {
		return nil, &timeseries.DateOrderError{Start: startInvestment, End: endOfLife}
	}
	return &Character{
		Name:                name,
		Assets:              assets,
		InitialCapitalGrams: initialCapitalGrams,
		StartInvestmentDate: startInvestment,
		EndOfLife:           endOfLife,
	}, nil
}

// Asset returns the asset named name, or nil.
func (c *Character) Asset(name string) *Asset {
	return lookup(c.Assets, name, func(a *Asset) string { return a.Name })
}

// Lifetime returns the simulated period of the character.
func (c *Character) Lifetime() date.Range {
	return date.Range{From: c.StartInvestmentDate, To: c.EndOfLife}
}
