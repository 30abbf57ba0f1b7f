package lifesim

import (
	"testing"

	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

var (
	jan2024 = date.New(2024, 1, 1)
	dec2024 = date.New(2024, 12, 31)
)

// constant is a helper for test to create a constant series over 2024.
func constant(t *testing.T, v float64) timeseries.TimeSeries {
	t.Helper()
	ts, err := timeseries.Constant(v, jan2024, dec2024)
	if err != nil {
		t.Fatalf("Constant() error = %v", err)
	}
	return ts
}

// euro is a currency with a constant 3% interest rate worth 10 EUR per gram of gold.
func euro(t *testing.T) *Currency {
	return &Currency{
		Name:         "EUR",
		InterestRate: constant(t, 0.03),
		Inflation:    constant(t, 0.02),
		UnitsPerGram: constant(t, 10),
	}
}

// germany has a stock index growing by 1.2% every month.
func germany(t *testing.T, eur *Currency) *Country {
	index, err := timeseries.Compound(3, 0.012, jan2024, dec2024)
	if err != nil {
		t.Fatalf("Compound() error = %v", err)
	}
	return &Country{
		Name:                                "DE",
		Currency:                            eur,
		RealEstateAcquisitionCostPercentage: 9,
		StockIndex:                          index,
	}
}

// near reports whether a and b differ by less than 1e-9.
func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
