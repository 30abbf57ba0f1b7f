package timeseries

import (
	"errors"
	"fmt"

	"github.com/etnz/lifesim/date"
)

// Sentinel errors, one per error kind. Every typed error below matches its
// sentinel with errors.Is.
var (
	ErrDateOrder         = errors.New("end date before start date")
	ErrLengthMismatch    = errors.New("sample count does not match the period")
	ErrRangeNotContained = errors.New("range not contained in series")
	ErrDivisionByZero    = errors.New("division by zero")
)

// DateOrderError reports an interval whose end precedes its start.
type DateOrderError struct {
	Start, End date.Date
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("start date %s is later than end date %s", e.Start, e.End)
}

func (e *DateOrderError) Is(target error) bool { return target == ErrDateOrder }

// LengthMismatchError reports samples that do not cover exactly one value per
// month of the interval.
type LengthMismatchError struct {
	Start, End date.Date
	Want, Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("period %s..%s has %d months, got %d samples", e.Start, e.End, e.Want, e.Got)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// RangeNotContainedError reports a date or a window that is not covered by
// the series it is drawn from, or a degenerate derived window.
type RangeNotContainedError struct {
	Range  date.Range // the covering interval
	Target date.Range // the requested interval, From == To for a single date
}

func (e *RangeNotContainedError) Error() string {
	if e.Target.From == e.Target.To {
		return fmt.Sprintf("date %s is not in %s", e.Target.From, e.Range)
	}
	return fmt.Sprintf("range %s is not contained in %s", e.Target, e.Range)
}

func (e *RangeNotContainedError) Is(target error) bool { return target == ErrRangeNotContained }

// DivisionByZeroError reports a divisor sample that is exactly zero.
type DivisionByZeroError struct {
	On date.Date // month of the zero sample
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: sample of %s is zero", e.On.Format("2006-01"))
}

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }
