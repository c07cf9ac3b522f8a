package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/milestones/internal/loader"
	"github.com/mmynk/milestones/internal/models"
	"github.com/mmynk/milestones/internal/storage"
)

// PeopleSource supplies the people to check.
type PeopleSource interface {
	People(ctx context.Context) ([]models.Person, error)
}

// FileSource reads people straight from a birthdays file.
type FileSource struct {
	Path string
}

// People loads the birthdays file. A missing file is an error.
func (s FileSource) People(ctx context.Context) ([]models.Person, error) {
	return loader.LoadFile(s.Path)
}

// StoreSource reads people from a store, importing the birthdays file into
// it first when the file exists.
type StoreSource struct {
	Store      storage.Store
	ImportPath string
	Logger     *slog.Logger
}

// People imports ImportPath (if set and present) and returns the stored people.
// A missing file is only tolerated when the store already holds people.
func (s StoreSource) People(ctx context.Context) ([]models.Person, error) {
	var missing error
	if s.ImportPath != "" {
		err := s.importFile(ctx)
		switch {
		case errors.Is(err, loader.ErrBirthdaysNotFound):
			missing = err
		case err != nil:
			return nil, err
		}
	}

	people, err := s.Store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read people from store: %w", err)
	}
	if len(people) == 0 && missing != nil {
		return nil, fmt.Errorf("no stored people to fall back on: %w", missing)
	}
	if missing != nil {
		s.logger().Debug("No birthdays file, using stored people", "path", s.ImportPath, "count", len(people))
	}
	return people, nil
}

func (s StoreSource) importFile(ctx context.Context) error {
	people, err := loader.LoadFile(s.ImportPath)
	if err != nil {
		return err
	}

	if err := s.Store.ReplacePeople(ctx, people); err != nil {
		return fmt.Errorf("failed to import birthdays: %w", err)
	}
	s.logger().Info("Birthdays imported", "path", s.ImportPath, "count", len(people))
	return nil
}

func (s StoreSource) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
