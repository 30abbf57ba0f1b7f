package date

import (
	"fmt"
	"iter"
)

// Range represents a closed range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Months returns the number of calendar months touched by the range.
func (r Range) Months() int { return Months(r.From, r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period to start the next iteration.
			current = periodRange.To.Add(1)
		}
	}
}

// Identifier compute a unique identifier for the Range.
// If the range is exactly a calendar period, use a short insighful name.
func (r Range) Identifier() string {
	for _, p := range []Period{Monthly, Quarterly, Yearly} {
		if p.Range(r.From) != r {
			continue
		}
		switch p {
		case Monthly:
			return r.From.Format("2006-01")
		case Quarterly:
			return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
		case Yearly:
			return r.From.Format("2006")
		}
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}
