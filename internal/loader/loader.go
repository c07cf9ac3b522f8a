// Package loader reads birthday records from JSON files.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/models"
)

var (
	ErrBirthdaysNotFound = errors.New("birthdays file not found")
	ErrInvalidRecord     = errors.New("invalid birthday record")
	ErrInvalidDate       = errors.New("invalid date")
)

// record is one entry of the birthdays file.
type record struct {
	Name     string `json:"name" validate:"required"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}

var validate = validator.New()

// LoadFile reads the birthdays file at path.
func LoadFile(path string) ([]models.Person, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s. Create one based on birthdays.example.json", ErrBirthdaysNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open birthdays file: %w", err)
	}
	defer f.Close()

	people, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return people, nil
}

// Parse decodes a JSON array of {"name", "birthday"} objects. Names are
// trimmed and birthdays must be YYYY-MM-DD.
func Parse(r io.Reader) ([]models.Person, error) {
	dec := json.NewDecoder(r)

	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode birthdays: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("failed to decode birthdays: want a JSON array, got null")
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode birthdays: unexpected data after the array")
	}

	people := make([]models.Person, 0, len(records))
	for i, rec := range records {
		rec.Name = strings.TrimSpace(rec.Name)
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", ErrInvalidRecord, i, describe(err))
		}

		birthday, err := ParseDate(rec.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidRecord, i, err)
		}
		people = append(people, models.NewPerson(rec.Name, birthday))
	}
	return people, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(calendar.ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidDate, s)
	}
	return d, nil
}

// describe turns validation errors into "field: problem" text without
// leaking struct names.
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "datetime":
			msgs = append(msgs, field+" must be YYYY-MM-DD")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
