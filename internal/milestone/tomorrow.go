package milestone

import (
	"time"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/models"
)

// FindTomorrow returns every (person, milestone) pair whose milestone falls on
// the day after today.
//
// People keep their input order and each person's milestones keep Rules
// order. An empty result means nothing happens tomorrow.
func FindTomorrow(people []models.Person, today time.Time) []models.Notification {
	target := calendar.AddDays(today, 1)

	var notifications []models.Notification
	for _, p := range people {
		for _, m := range ForPerson(p) {
			if m.Date.Equal(target) {
				notifications = append(notifications, models.Notification{
					Person:    p,
					Milestone: m,
				})
			}
		}
	}
	return notifications
}
