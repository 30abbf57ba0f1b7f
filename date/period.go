package date

import (
	"fmt"
	"strings"
)

// Period is a calendar bucket a monthly series can be folded into.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "month", "year").
func (p Period) Name() string {
	switch p {
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Range returns a Range for the given period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ParsePeriod parses a period name; both "monthly" and "month" forms are accepted.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so periods can be read from config files.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.Name()), nil }
