package timeseries

import "github.com/etnz/lifesim/date"

// window computes the half-open sample window [i0, i1) inside a series
// spanning base that corresponds to target.
//
// Containment is checked on whole months: target must not end before it
// starts, and both of its months must lie within base's months.
func window(base, target date.Range) (i0, i1 int, err error) {
	n := base.Months()
	i0 = date.Months(base.From, target.From) - 1
	i1 = date.Months(base.From, target.To)
	if target.To.Before(target.From) || i0 < 0 || i0 >= n || i1 <= i0 || i1 > n {
		return 0, 0, &RangeNotContainedError{Range: base, Target: target}
	}
	return i0, i1, nil
}

// union returns the smallest range covering both a and b.
func union(a, b date.Range) date.Range {
	return date.Range{From: date.Min(a.From, b.From), To: date.Max(a.To, b.To)}
}

// intersection returns the overlap of a and b, or an error when they share
// no day. Sharing a month is not enough.
func intersection(a, b date.Range) (date.Range, error) {
	r := date.Range{From: date.Max(a.From, b.From), To: date.Min(a.To, b.To)}
	if r.To.Before(r.From) {
		return r, &RangeNotContainedError{Range: a, Target: b}
	}
	return r, nil
}
