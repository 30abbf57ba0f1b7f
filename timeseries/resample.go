package timeseries

import (
	"github.com/etnz/lifesim/date"
)

// FromHistory samples a sparse history into a monthly series over [start, end].
//
// The sample of each month is the value as of the last day of that month. It
// fails with a *RangeNotContainedError when the history holds no value on or
// before the end of the first month.
func FromHistory(h *date.History[float64], start, end date.Date) (TimeSeries, error) {
	if end.Before(start) {
		return TimeSeries{}, &DateOrderError{Start: start, End: end}
	}
	samples := make([]float64, date.Months(start, end))
	for i := range samples {
		on := start.AddMonth(i).EndOf(date.Monthly)
		v, ok := h.ValueAsOf(on)
		if !ok {
			first, _ := h.Earliest()
			latest, _ := h.Latest()
			return TimeSeries{}, &RangeNotContainedError{
				Range:  date.Range{From: first, To: latest},
				Target: date.Range{From: start, To: end},
			}
		}
		samples[i] = v
	}
	return TimeSeries{start: start, end: end, samples: samples}, nil
}

// Aggregation tells how the monthly samples falling in the same period are
// combined.
type Aggregation int

const (
	// Last keeps the last sample of the period, for levels such as values or prices.
	Last Aggregation = iota
	// Total sums the samples of the period, for flows such as cash streams.
	Total
)

// Bucket is one period of a resampled series.
type Bucket struct {
	Range date.Range // the calendar period
	Value float64
}

// Resample folds the monthly samples into calendar periods.
//
// Every period touched by the series yields one bucket, in chronological
// order. Resampling to Monthly returns one bucket per sample.
func (ts TimeSeries) Resample(p date.Period, agg Aggregation) []Bucket {
	var buckets []Bucket
	for on, v := range ts.Dates() {
		r := p.Range(on)
		if n := len(buckets); n > 0 && buckets[n-1].Range == r {
			switch agg {
			case Total:
				buckets[n-1].Value += v
			default:
				buckets[n-1].Value = v
			}
			continue
		}
		buckets = append(buckets, Bucket{Range: r, Value: v})
	}
	return buckets
}
