package timeline

import (
	"math"
	"time"
)

// CountdownStatus classifies how far away the next occurrence is.
type CountdownStatus string

const (
	// CountdownToday means the occurrence is this calendar day.
	CountdownToday CountdownStatus = "today"
	// CountdownUpcoming means the occurrence is at least one day away.
	CountdownUpcoming CountdownStatus = "upcoming"
	// CountdownPast should not occur given the year roll-over rule; it is
	// kept as a guard value so a bug cannot masquerade as "upcoming".
	CountdownPast CountdownStatus = "past"
)

// Countdown is the distance from now to the next annual occurrence of a
// recurring date.
type Countdown struct {
	Next      time.Time       `json:"-"`
	NextDate  string          `json:"nextDate"`
	DaysUntil int             `json:"daysUntil"`
	Status    CountdownStatus `json:"status"`
}

// CountdownTo computes the next annual occurrence of the month/day of date,
// relative to now. The stored year is ignored; if this year's occurrence has
// already passed, the countdown wraps to next year. A Feb 29 anniversary
// falls on Feb 28 in non-leap years rather than silently rolling into March.
func CountdownTo(date, now time.Time) Countdown {
	today := midnight(now)

	next := occurrenceInYear(date, today.Year(), today.Location())
	if next.Before(today) {
		next = occurrenceInYear(date, today.Year()+1, today.Location())
	}

	days := daysUntil(today, next)

	status := CountdownUpcoming
	switch {
	case days == 0:
		status = CountdownToday
	case days < 0:
		status = CountdownPast
	}

	return Countdown{
		Next:      next,
		NextDate:  next.Format(DateLayout),
		DaysUntil: days,
		Status:    status,
	}
}

// occurrenceInYear places the month/day of date into the given year,
// normalizing Feb 29 to Feb 28 when the target year is not a leap year.
// time.Date would otherwise roll the overflow into Mar 1.
func occurrenceInYear(date time.Time, year int, loc *time.Location) time.Time {
	month, day := date.Month(), date.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysUntil is daysBetween without the negative clamp, so the past guard in
// CountdownTo stays observable.
func daysUntil(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
