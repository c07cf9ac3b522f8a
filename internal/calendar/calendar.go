// Package calendar provides timezone-naive date arithmetic.
//
// Dates are represented as time.Time values at midnight UTC. Adding whole
// months or years never rolls over into the following month: when the
// original day-of-month does not exist in the target month, the day is
// clamped to that month's last day.
package calendar

import "time"

// ISOLayout is the YYYY-MM-DD layout used for parsing and printing dates.
const ISOLayout = "2006-01-02"

// Date returns midnight UTC on the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t and returns its calendar day.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddDays adds n whole days to base.
func AddDays(base time.Time, n int) time.Time {
	return Truncate(base).AddDate(0, 0, n)
}

// AddMonths adds n months to base, clamping the day to the end of the
// resulting month. n may be negative.
func AddMonths(base time.Time, n int) time.Time {
	y, m, d := base.Date()

	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12 + 1)

	return Date(year, month, min(d, DaysIn(year, month)))
}

// AddYears adds n years to base. Feb 29 becomes Feb 28 when the target year
// is not a leap year.
func AddYears(base time.Time, n int) time.Time {
	y, m, d := base.Date()
	year := y + n
	return Date(year, m, min(d, DaysIn(year, m)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
