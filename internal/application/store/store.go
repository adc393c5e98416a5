package store

import (
	"context"

	"enrolld/internal/application/models"
)

type Store interface {
	All(ctx context.Context) ([]models.Application, error)
	// Append assigns the next identifier in the ledger's sequence and
	// returns the stored record.
	Append(ctx context.Context, app models.Application) (models.Application, error)
	Delete(ctx context.Context, id int64) error
}
