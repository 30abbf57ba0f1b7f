package timeseries

// Add returns ts + x over the union of both intervals.
//
// A month outside an operand's own interval contributes zero.
func (ts TimeSeries) Add(x TimeSeries) (TimeSeries, error) {
	r := union(ts.Range(), x.Range())
	out := TimeSeries{start: r.From, end: r.To, samples: make([]float64, r.Months())}
	for _, s := range []TimeSeries{ts, x} {
		i0, i1, err := window(r, s.Range())
		if err != nil {
			return TimeSeries{}, err
		}
		for i := i0; i < i1; i++ {
			out.samples[i] += s.samples[i-i0]
		}
	}
	return out, nil
}

// Sub returns ts - x over the union of both intervals, that is ts + x.Neg().
func (ts TimeSeries) Sub(x TimeSeries) (TimeSeries, error) { return ts.Add(x.Neg()) }

// Mul returns ts * x over the intersection of both intervals.
//
// It fails with a *RangeNotContainedError when the intervals do not overlap.
func (ts TimeSeries) Mul(x TimeSeries) (TimeSeries, error) {
	r, err := intersection(ts.Range(), x.Range())
	if err != nil {
		return TimeSeries{}, err
	}
	out, err := Constant(1, r.From, r.To)
	if err != nil {
		return TimeSeries{}, err
	}
	for _, s := range []TimeSeries{ts, x} {
		i0, _, err := window(s.Range(), r)
		if err != nil {
			return TimeSeries{}, err
		}
		for i := range out.samples {
			out.samples[i] *= s.samples[i0+i]
		}
	}
	return out, nil
}

// Div returns ts / x over the intersection of both intervals, that is ts * x.Reciprocal().
//
// It fails with a *DivisionByZeroError when any sample of x is zero, even
// outside of the intersection.
func (ts TimeSeries) Div(x TimeSeries) (TimeSeries, error) {
	inv, err := x.Reciprocal()
	if err != nil {
		return TimeSeries{}, err
	}
	return ts.Mul(inv)
}

// Neg returns the series with every sample sign-flipped.
func (ts TimeSeries) Neg() TimeSeries { return ts.Map(func(v float64) float64 { return -v }) }

// Reciprocal returns the series of multiplicative inverses.
//
// It fails with a *DivisionByZeroError on the first zero sample.
func (ts TimeSeries) Reciprocal() (TimeSeries, error) {
	for on, v := range ts.Dates() {
		if v == 0 {
			return TimeSeries{}, &DivisionByZeroError{On: on}
		}
	}
	return ts.Map(func(v float64) float64 { return 1 / v }), nil
}

// Scale returns the series with every sample multiplied by k.
func (ts TimeSeries) Scale(k float64) TimeSeries {
	return ts.Map(func(v float64) float64 { return v * k })
}

// Offset returns the series with k added to every sample.
func (ts TimeSeries) Offset(k float64) TimeSeries {
	return ts.Map(func(v float64) float64 { return v + k })
}

// Growth interprets ts as a series of yearly rates (0.03 for 3%) compounded
// periodsPerYear times a year, and returns the cumulative growth factor of
// one unit invested at Start.
//
// The first sample is 1, sample t is the product of (1 + rate[k]/periodsPerYear)
// for every k < t.
func (ts TimeSeries) Growth(periodsPerYear float64) TimeSeries {
	samples := make([]float64, len(ts.samples))
	factor := 1.0
	for i, rate := range ts.samples {
		samples[i] = factor
		factor *= 1 + rate/periodsPerYear
	}
	return TimeSeries{start: ts.start, end: ts.end, samples: samples}
}
