package models

import (
	"strings"
	"time"
)

// Person is someone whose birthday is tracked.
type Person struct {
	// Name is the display name, trimmed of surrounding whitespace.
	Name string

	// Birthday is the date of birth at midnight UTC.
	Birthday time.Time
}

// NewPerson returns a Person with a trimmed name and a birthday reduced to
// its calendar day.
func NewPerson(name string, birthday time.Time) Person {
	y, m, d := birthday.Date()
	return Person{
		Name:     strings.TrimSpace(name),
		Birthday: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}
