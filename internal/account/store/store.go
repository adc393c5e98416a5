package store

import (
	"context"

	"enrolld/internal/account/models"
)

// Store is interface-driven to keep the registry testable and to allow
// swapping persistence without rewiring business code.
type Store interface {
	// All returns every account, hashes included.
	All(ctx context.Context) ([]models.Account, error)
	// Append adds the account, returning sentinel.ErrConflict when another
	// account already uses the email ignoring case. The uniqueness check
	// and the insert are atomic.
	Append(ctx context.Context, account models.Account) error
	// FindByEmailFold looks up an account case-insensitively; returns
	// sentinel.ErrNotFound when absent.
	FindByEmailFold(ctx context.Context, email string) (models.Account, error)
	// FindByEmailExact looks up an account by exact email. The application
	// ledger's ownership check depends on the exact match.
	FindByEmailExact(ctx context.Context, email string) (models.Account, error)
}
