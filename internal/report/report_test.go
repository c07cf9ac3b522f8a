package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/models"
)

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "No milestones tomorrow.\n", buf.String())
}

func TestWriteNotifications(t *testing.T) {
	ann := models.NewPerson("Ann", calendar.Date(1990, 3, 1))
	bob := models.NewPerson("Bob", calendar.Date(2000, 1, 1))

	var buf bytes.Buffer
	err := Write(&buf, []models.Notification{
		{Person: ann, Milestone: models.Milestone{Label: "100 months", Date: calendar.Date(1998, 7, 1)}},
		{Person: bob, Milestone: models.Milestone{Label: "10,000 days", Date: calendar.Date(2027, 5, 19)}},
	})
	require.NoError(t, err)

	want := "Milestones tomorrow:\n" +
		"- Ann: 100 months (1998-07-01)\n" +
		"- Bob: 10,000 days (2027-05-19)\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesErrors(t *testing.T) {
	err := Write(failingWriter{}, nil)
	assert.EqualError(t, err, "disk full")
}
