// Package report renders milestone notifications for people to read.
package report

import (
	"fmt"
	"io"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/models"
)

const (
	emptyMessage = "No milestones tomorrow."
	header       = "Milestones tomorrow:"
)

// Write prints one line per notification, or a short message when there are
// none. Dates are printed as YYYY-MM-DD.
func Write(w io.Writer, notifications []models.Notification) error {
	if len(notifications) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, n := range notifications {
		if _, err := fmt.Fprintf(w, "- %s: %s (%s)\n",
			n.Person.Name,
			n.Milestone.Label,
			n.Milestone.Date.Format(calendar.ISOLayout),
		); err != nil {
			return fmt.Errorf("failed to write notification for %s: %w", n.Person.Name, err)
		}
	}
	return nil
}
