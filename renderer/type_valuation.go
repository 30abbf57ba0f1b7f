package renderer

import (
	"slices"

	"github.com/etnz/lifesim"
	"github.com/etnz/lifesim/date"
	"github.com/etnz/lifesim/timeseries"
)

// Measure selects the series reported for every asset.
type Measure int

const (
	// Value is the net worth contribution of an asset.
	Value Measure = iota
	// Stream is the cash flow produced by an asset.
	Stream
)

func (m Measure) String() string {
	if m == Stream {
		return "Stream"
	}
	return "Value"
}

// aggregation returns how monthly samples are folded: values are levels,
// streams are flows.
func (m Measure) aggregation() timeseries.Aggregation {
	if m == Stream {
		return timeseries.Total
	}
	return timeseries.Last
}

// Valuation is a table of asset series, one column per asset, one row per
// period.
type Valuation struct {
	Measure Measure        `json:"measure"`
	Period  date.Period    `json:"period"`
	Unit    Unit           `json:"unit"`
	Assets  []string       `json:"assets"`
	Rows    []ValuationRow `json:"rows"`
}

// ValuationRow is one period of a Valuation.
type ValuationRow struct {
	Range date.Range `json:"range"`
	// Values has one item per asset, nil when the asset is not held during the period.
	Values []*float64 `json:"values"`
}

// NewValuation computes the measure of every asset up to horizon, folded by
// period p. Series are expressed in grams of gold, or in cur when it is not
// nil.
func NewValuation(assets []*lifesim.Asset, horizon date.Date, m Measure, p date.Period, cur *lifesim.Currency) (*Valuation, error) {
	v := &Valuation{Measure: m, Period: p}
	if cur != nil {
		v.Unit.Currency = cur.Name
	}

	rows := make(map[date.Range][]*float64)
	for i, a := range assets {
		v.Assets = append(v.Assets, a.Name)
		ts, err := measure(a, horizon, m)
		if err != nil {
			return nil, err
		}
		if cur != nil {
			if ts, err = cur.FromGold(ts); err != nil {
				return nil, err
			}
		}
		for _, b := range ts.Resample(p, m.aggregation()) {
			row, exists := rows[b.Range]
			if !exists {
				row = make([]*float64, len(assets))
				rows[b.Range] = row
			}
			row[i] = &b.Value
		}
	}

	for r, values := range rows {
		v.Rows = append(v.Rows, ValuationRow{Range: r, Values: values})
	}
	slices.SortFunc(v.Rows, func(a, b ValuationRow) int { return a.Range.From.Compare(b.Range.From) })
	return v, nil
}

func measure(a *lifesim.Asset, horizon date.Date, m Measure) (timeseries.TimeSeries, error) {
	if m == Stream {
		return a.Stream(horizon)
	}
	return a.Value(horizon)
}
