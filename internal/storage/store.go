// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/milestones/internal/models"
)

// Store defines the interface for people storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// ReplacePeople replaces the stored people with the given list.
	// Input order is kept and returned by ListPeople.
	ReplacePeople(ctx context.Context, people []models.Person) error

	// ListPeople returns all stored people in the order they were saved.
	ListPeople(ctx context.Context) ([]models.Person, error)

	// Close releases any resources held by the store.
	Close() error
}
