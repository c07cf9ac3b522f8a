// Package models defines the domain values shared across the milestones tool.
//
// # Values
//
//   - Person: someone whose birthday is tracked
//   - Milestone: a named date derived from a birthday
//   - Notification: a milestone that falls on the target day for a person
//
// All three are plain values. They are created once, never mutated, and
// compare by value, which keeps the computation reproducible when the
// reference date is overridden.
//
// # Dates
//
// Dates carry no timezone meaning. They are stored as time.Time values at
// midnight UTC; see package calendar for the arithmetic on them.
package models
