package store

import (
	"context"

	"enrolld/internal/institution/models"
)

type Store interface {
	All(ctx context.Context) ([]models.Institution, error)
	// Create assigns the next identifier in the collection's sequence,
	// ignoring any caller-supplied ID, and returns the stored record.
	Create(ctx context.Context, inst models.Institution) (models.Institution, error)
	// Replace swaps the record stored under id; sentinel.ErrNotFound when
	// absent.
	Replace(ctx context.Context, id int64, inst models.Institution) error
	Delete(ctx context.Context, id int64) error
}
