// Package milestone derives fun calendar milestones from birthdays and picks
// the ones that fall on the day after a reference date.
package milestone

import (
	"time"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/models"
)

// Rule computes one milestone date from a birthday.
type Rule struct {
	Label string
	Date  func(birthday time.Time) time.Time
}

// Rules is the fixed milestone rule set, in output order.
var Rules = []Rule{
	{Label: "100 months", Date: months(100)},
	{Label: "500 months", Date: months(500)},
	{Label: "1000 months", Date: months(1000)},
	{Label: "10,000 days", Date: days(10_000)},
	{Label: "1 year, 1 month, 1 week, 1 day", Date: yearMonthWeekDay},
	{Label: "100,000 hours", Date: elapsed(100_000 * time.Hour)},
	{Label: "500,000 hours", Date: elapsed(500_000 * time.Hour)},
	{Label: "1,000,000,000 seconds", Date: elapsed(1_000_000_000 * time.Second)},
}

// Candidates returns every milestone for the given birthday, in Rules order.
func Candidates(birthday time.Time) []models.Milestone {
	base := calendar.Truncate(birthday)

	milestones := make([]models.Milestone, 0, len(Rules))
	for _, rule := range Rules {
		milestones = append(milestones, models.Milestone{
			Label: rule.Label,
			Date:  rule.Date(base),
		})
	}
	return milestones
}

// ForPerson returns the milestones for a person's birthday.
func ForPerson(p models.Person) []models.Milestone {
	return Candidates(p.Birthday)
}

func months(n int) func(time.Time) time.Time {
	return func(b time.Time) time.Time { return calendar.AddMonths(b, n) }
}

func days(n int) func(time.Time) time.Time {
	return func(b time.Time) time.Time { return calendar.AddDays(b, n) }
}

// elapsed adds an exact duration to midnight of the birthday and keeps only
// the resulting day.
func elapsed(d time.Duration) func(time.Time) time.Time {
	return func(b time.Time) time.Time { return calendar.Truncate(b.Add(d)) }
}

// yearMonthWeekDay applies years, then months, then one week and one day.
// The order matters: each step clamps against the month it lands in.
func yearMonthWeekDay(b time.Time) time.Time {
	d := calendar.AddYears(b, 1)
	d = calendar.AddMonths(d, 1)
	return calendar.AddDays(d, 7+1)
}
