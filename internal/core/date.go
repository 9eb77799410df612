package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned for dates that could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

const (
	isoLayout    = "2006-01-02"
	frenchLayout = "02/01/2006"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Date is a calendar date. A Date built from an unparsable string keeps the
// raw input so it can still be displayed.
type Date struct {
	time.Time
	raw string
}

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts ISO (2024-02-15) and French (15/02/2024) dates.
// It never fails: malformed input yields a zero Date that remembers it.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	for _, layout := range []string{isoLayout, frenchLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}
		}
	}
	return Date{raw: s}
}

func (d Date) Validate() error {
	if d.IsZero() {
		if d.raw != "" {
			return fmt.Errorf("%w: %q", ErrInvalidDate, d.raw)
		}
		return fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	return nil
}

// ISO returns the date as YYYY-MM-DD, or the raw input for malformed dates.
func (d Date) ISO() string {
	if d.IsZero() {
		return d.raw
	}
	return d.Format(isoLayout)
}

// Short returns the date as DD/MM/YYYY, or the raw input for malformed dates.
func (d Date) Short() string {
	if d.IsZero() {
		return d.raw
	}
	return d.Format(frenchLayout)
}

// Long returns the French long form ("15 février 2024"), or the raw input
// for malformed dates.
func (d Date) Long() string {
	if d.IsZero() {
		return d.raw
	}
	return fmt.Sprintf("%d %s %d", d.Day(), frenchMonths[d.Month()-1], d.Year())
}
