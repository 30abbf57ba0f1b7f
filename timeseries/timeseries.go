package timeseries

import (
	"iter"
	"math"
	"slices"

	"github.com/etnz/lifesim/date"
)

// TimeSeries is an immutable sequence of monthly samples over a closed date interval.
//
// The zero value is an empty series and is not a valid operand.
type TimeSeries struct {
	start, end date.Date
	samples    []float64
}

// New returns a TimeSeries over [start, end] holding a copy of samples.
//
// It fails with a *DateOrderError when end is before start, and with a
// *LengthMismatchError when samples does not hold exactly one value per month.
func New(start, end date.Date, samples []float64) (TimeSeries, error) {
	if end.Before(start) {
		return TimeSeries{}, &DateOrderError{Start: start, End: end}
	}
	if want := date.Months(start, end); len(samples) != want {
		return TimeSeries{}, &LengthMismatchError{Start: start, End: end, Want: want, Got: len(samples)}
	}
	return TimeSeries{start: start, end: end, samples: slices.Clone(samples)}, nil
}

// MustNew is like New but panics on error.
func MustNew(start, end date.Date, samples []float64) TimeSeries {
	ts, err := New(start, end, samples)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// generate builds a series over [start, end] whose sample t is f(t).
func generate(start, end date.Date, f func(t int) float64) (TimeSeries, error) {
	if end.Before(start) {
		return TimeSeries{}, &DateOrderError{Start: start, End: end}
	}
	samples := make([]float64, date.Months(start, end))
	for t := range samples {
		samples[t] = f(t)
	}
	return TimeSeries{start: start, end: end, samples: samples}, nil
}

// Constant returns a series over [start, end] where every sample is value.
func Constant(value float64, start, end date.Date) (TimeSeries, error) {
	return generate(start, end, func(int) float64 { return value })
}

// Linear returns a series over [start, end] where sample t, the month offset
// from start, is intercept + slope*t.
func Linear(intercept, slope float64, start, end date.Date) (TimeSeries, error) {
	return generate(start, end, func(t int) float64 { return intercept + slope*float64(t) })
}

// Compound returns a series over [start, end] growing by rate every month:
// sample t is initial * (1+rate)^t.
func Compound(initial, rate float64, start, end date.Date) (TimeSeries, error) {
	return generate(start, end, func(t int) float64 { return initial * math.Pow(1+rate, float64(t)) })
}

// Start returns the first day of the series.
func (ts TimeSeries) Start() date.Date { return ts.start }

// End returns the last day of the series.
func (ts TimeSeries) End() date.Date { return ts.end }

// Range returns the closed interval spanned by the series.
func (ts TimeSeries) Range() date.Range { return date.Range{From: ts.start, To: ts.end} }

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts.samples) }

// Samples returns a copy of the samples.
func (ts TimeSeries) Samples() []float64 { return slices.Clone(ts.samples) }

// First returns the first sample, or 0 for an empty series.
func (ts TimeSeries) First() float64 {
	if len(ts.samples) == 0 {
		return 0
	}
	return ts.samples[0]
}

// Last returns the last sample, or 0 for an empty series.
func (ts TimeSeries) Last() float64 {
	if len(ts.samples) == 0 {
		return 0
	}
	return ts.samples[len(ts.samples)-1]
}

// Sum returns the sum of all samples.
func (ts TimeSeries) Sum() float64 {
	var s float64
	for _, v := range ts.samples {
		s += v
	}
	return s
}

// At returns the sample of the month containing on.
//
// It fails with a *RangeNotContainedError when on is outside [Start, End].
func (ts TimeSeries) At(on date.Date) (float64, error) {
	if !ts.Range().Contains(on) {
		return 0, &RangeNotContainedError{Range: ts.Range(), Target: date.Range{From: on, To: on}}
	}
	return ts.samples[date.Months(ts.start, on)-1], nil
}

// Slice returns the sub series over [from, to].
//
// Both months must lie within the series' months, and to must not be before
// from, otherwise it fails with a *RangeNotContainedError.
func (ts TimeSeries) Slice(from, to date.Date) (TimeSeries, error) {
	target := date.Range{From: from, To: to}
	i0, i1, err := window(ts.Range(), target)
	if err != nil {
		return TimeSeries{}, err
	}
	return TimeSeries{start: from, end: to, samples: slices.Clone(ts.samples[i0:i1])}, nil
}

// Dates returns an iterator over the month of each sample and its value.
//
// The first month is reported as Start, the following ones as the first day
// of their month.
func (ts TimeSeries) Dates() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, v := range ts.samples {
			on := ts.start
			if i > 0 {
				on = ts.start.AddMonth(i)
			}
			if !yield(on, v) {
				return
			}
		}
	}
}

// WithFirst returns a copy of ts with the first sample replaced by v.
func (ts TimeSeries) WithFirst(v float64) TimeSeries { return ts.with(0, v) }

// WithLast returns a copy of ts with the last sample replaced by v.
func (ts TimeSeries) WithLast(v float64) TimeSeries { return ts.with(len(ts.samples)-1, v) }

func (ts TimeSeries) with(i int, v float64) TimeSeries {
	out := ts.Map(func(x float64) float64 { return x })
	if i >= 0 && i < len(out.samples) {
		out.samples[i] = v
	}
	return out
}

// Map returns a new series over the same interval with f applied to every sample.
func (ts TimeSeries) Map(f func(float64) float64) TimeSeries {
	samples := make([]float64, len(ts.samples))
	for i, v := range ts.samples {
		samples[i] = f(v)
	}
	return TimeSeries{start: ts.start, end: ts.end, samples: samples}
}

// Equal reports whether ts and x span the same interval with samples that
// differ by at most tolerance.
func (ts TimeSeries) Equal(x TimeSeries, tolerance float64) bool {
	if ts.start != x.start || ts.end != x.end || len(ts.samples) != len(x.samples) {
		return false
	}
	for i, v := range ts.samples {
		if math.Abs(v-x.samples[i]) > tolerance {
			return false
		}
	}
	return true
}
