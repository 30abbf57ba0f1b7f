// Package date provides the calendar types used to anchor simulation series:
// a day-granular Date, closed Ranges of dates, calendar Periods and a sparse
// History of dated observations.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns the first day of the month i months after the month of d.
//
// Unlike a plain month shift on the day, it never overflows into the next
// month (January 31st plus one month is February 1st, not March 2nd).
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), 1) }

// Min returns the earliest of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the latest of a and b.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// index returns a month counter, strictly increasing with calendar months.
func (d Date) index() int { return d.y*12 + int(d.m) - 1 }

// Months returns the number of calendar months in the closed interval
// [from, to], counting both endpoints' months.
//
// It is 1 when both dates fall in the same month, and it is zero or negative
// when to falls in a month before from.
func Months(from, to Date) int { return to.index() - from.index() + 1 }

// SameMonth reports whether d and x fall in the same calendar month.
func (d Date) SameMonth(x Date) bool { return d.index() == x.index() }

// StartOf returns the date of begining of a given period
func (d Date) StartOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		quarter := (d.m - 1) / 3
		return New(d.y, quarter*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// EndOf returns the date of end of a given period
func (d Date) EndOf(period Period) Date {
	switch period {
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		quarter := (d.m - 1) / 3       // in [0..3]
		endMonth := quarter*3 + 3      // in [1..12] hence the +3
		return New(d.y, endMonth+1, 0) // last is next month on the day 0
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
//
// A bare "YYYY-MM" designates the first day of that month.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		// try the month format
		on, err = time.Parse("2006-1", str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// UnmarshalText lets dates be used as json map keys and yaml scalars.
func (j *Date) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
