package models

import "time"

// Milestone is a named date derived from a birthday.
type Milestone struct {
	// Label identifies the rule that produced the milestone (e.g. "100 months").
	Label string

	// Date is the day the milestone falls on, at midnight UTC.
	Date time.Time
}

// Notification pairs a person with a milestone that falls on the target day.
type Notification struct {
	Person    Person
	Milestone Milestone
}
