// Package timeseries implements the numeric engine of the simulator: an
// immutable, monthly-sampled sequence of float64 anchored to a closed date
// interval.
//
// A TimeSeries spanning [start, end] holds exactly one sample per calendar
// month touched by the interval, both endpoints' months included. Samples are
// addressed by date:
//
//	v, err := ts.At(date.New(2024, time.March, 1))
//	sub, err := ts.Slice(date.New(2024, time.February, 1), date.New(2024, time.April, 1))
//
// The four arithmetic operators align their operands on the calendar:
//
//   - Add and Sub work on the union of both domains; a month outside an
//     operand's own domain contributes zero.
//   - Mul and Div work on the intersection of both date intervals only,
//     which is empty when the operands share no day, even in a common month.
//
// Every operation returns a new TimeSeries and never modifies its operands,
// so values can be shared freely, including across goroutines.
//
// Failures are reported with four error kinds, each matching a sentinel
// through errors.Is: ErrDateOrder, ErrLengthMismatch, ErrRangeNotContained
// and ErrDivisionByZero.
package timeseries
