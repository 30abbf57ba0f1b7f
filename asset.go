package lifesim

import (
	"fmt"
	"strings"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

// Kind identifies the variant of an Asset.
type Kind int

const (
	KindStock Kind = iota
	KindRealEstate
	KindCommodity
	KindSaving
	KindLoan
	KindJob
)

var kindNames = [...]string{
	KindStock:      "stock",
	KindRealEstate: "real-estate",
	KindCommodity:  "commodity",
	KindSaving:     "saving",
	KindLoan:       "loan",
	KindJob:        "job",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a kind name as returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown asset kind %q", s)
}

// Stock is a bundle of the main stock index of a country.
type Stock struct {
	Country *Country
}

// RealEstate is a property in a city.
type RealEstate struct {
	City       *City
	SurfaceSqm float64
}

// CommodityBundle is a quantity of a commodity.
type CommodityBundle struct {
	Commodity *Commodity
}

// Saving is a saving account paying the currency interest rate.
type Saving struct{}

// Loan is an annuity loan, repaid monthly until EndDate.
type Loan struct {
	EndDate date.Date
}

// Job produces a constant monthly saving. It has no market value.
type Job struct {
	MonthlySaving float64 // in the asset currency
}

// Asset is something owned by a character for a period of time.
//
// Kind selects the variant, and the matching payload field must be set; all
// other payload fields are ignored.
type Asset struct {
	Name         string
	Kind         Kind
	InitialValue float64   // in Currency; the principal for a loan
	PurchaseDate date.Date
	SaleDate     date.Date // zero while the asset is held
	Currency     *Currency

	Stock      *Stock
	RealEstate *RealEstate
	Commodity  *CommodityBundle
	Saving     *Saving
	Loan       *Loan
	Job        *Job
}

// payload returns the variant payload selected by Kind, or nil.
func (a *Asset) payload() any {
	switch a.Kind {
	case KindStock:
		if a.Stock != nil {
			return a.Stock
		}
	case KindRealEstate:
		if a.RealEstate != nil {
			return a.RealEstate
		}
	case KindCommodity:
		if a.Commodity != nil {
			return a.Commodity
		}
	case KindSaving:
		if a.Saving != nil {
			return a.Saving
		}
	case KindLoan:
		if a.Loan != nil {
			return a.Loan
		}
	case KindJob:
		if a.Job != nil {
			return a.Job
		}
	}
	return nil
}

// Validate checks the asset is well formed.
func (a *Asset) Validate() error {
	if a.payload() == nil {
		return fmt.Errorf("asset %q: missing %s details", a.Name, a.Kind)
	}
	if a.Currency == nil {
		return fmt.Errorf("asset %q: missing currency", a.Name)
	}
	if !a.SaleDate.IsZero() && a.SaleDate.Before(a.PurchaseDate) {
		return fmt.Errorf("asset %q: %w", a.Name, &timeseries.DateOrderError{Start: a.PurchaseDate, End: a.SaleDate})
	}
	if a.Kind == KindRealEstate && a.RealEstate.City != nil && a.RealEstate.City.Country != nil {
		// housing prices are quoted in the currency of the city's country.
		if local := a.RealEstate.City.Country.Currency; local != nil && local.Name != a.Currency.Name {
			return fmt.Errorf("asset %q: priced in %s but %s real estate is priced in %s", a.Name, a.Currency.Name, a.RealEstate.City.Name, local.Name)
		}
	}
	if a.Kind == KindLoan && a.Loan.EndDate.Before(a.PurchaseDate) {
		return fmt.Errorf("asset %q: %w", a.Name, &timeseries.DateOrderError{Start: a.PurchaseDate, End: a.Loan.EndDate})
	}
	return nil
}

// Holding returns the period the asset is owned: from the purchase to the
// sale, or to horizon while the asset is held.
//
// A loan is held until its end date unless it is sold (repaid) earlier,
// whatever the horizon.
func (a *Asset) Holding(horizon date.Date) (date.Range, error) {
	end := a.SaleDate
	if a.Kind == KindLoan && a.Loan != nil && (end.IsZero() || a.Loan.EndDate.Before(end)) {
		end = a.Loan.EndDate
	}
	if end.IsZero() {
		end = horizon
	}
	if end.Before(a.PurchaseDate) {
		return date.Range{}, &timeseries.DateOrderError{Start: a.PurchaseDate, End: end}
	}
	return date.Range{From: a.PurchaseDate, To: end}, nil
}
