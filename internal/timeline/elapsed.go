// Package timeline holds the derived temporal state of a relationship: elapsed
// units since the start date, the narrative breakdown, milestone progress,
// countdowns to recurring dates and the quote of the day. Everything here is a
// pure function over already-validated inputs; the only failure mode is a
// malformed date string at the boundary.
package timeline

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (local-date semantics, no
// time component).
const DateLayout = "2006-01-02"

// InvalidDateError reports a date string that does not parse as a valid
// calendar date. Callers must treat the owning record as absent rather than
// propagate garbage downstream.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Value)
}

// ParseDate parses a YYYY-MM-DD string at local midnight. Out-of-range
// components (e.g. 2024-02-31) are rejected, not normalized.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: value}
	}
	return t, nil
}

// Elapsed is the raw calendar difference between the start date and now.
// Months and Years honor day-of-month roll-over: one full month requires the
// day of month of now to have reached the day of month of the start date.
type Elapsed struct {
	Days    int `json:"days"`
	Months  int `json:"months"`
	Years   int `json:"years"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ElapsedSince computes the elapsed units between start and now. When now is
// before start (clock skew, bad input) every unit clamps to zero.
func ElapsedSince(start, now time.Time) Elapsed {
	if now.Before(start) {
		return Elapsed{}
	}

	delta := now.Sub(start)
	months := monthsBetween(start, now)

	return Elapsed{
		Days:    daysBetween(start, now),
		Months:  months,
		Years:   months / 12,
		Hours:   int(delta.Hours()),
		Minutes: int(delta.Minutes()),
		Seconds: int(delta.Seconds()),
	}
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Rounding absorbs DST days
// that are not exactly 24 hours long.
func daysBetween(a, b time.Time) int {
	d := int(math.Round(midnight(b).Sub(midnight(a)).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
