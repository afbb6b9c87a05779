package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseSolar parses a YYYY-MM-DD date. Malformed or impossible dates
// (2023-02-30) return ErrInvalidDate. The year range is not checked.
func ParseSolar(s string) (Solar, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Solar{}, fmt.Errorf("%w: %q, use YYYY-MM-DD", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// FromTime returns the solar date of t in t's location.
func FromTime(t time.Time) Solar {
	return Solar{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Time returns midnight UTC of the date.
func (s Solar) Time() time.Time {
	return time.Date(s.Year, time.Month(s.Month), s.Day, 0, 0, 0, 0, time.UTC)
}
