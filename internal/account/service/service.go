// Package service implements the account registry: signup, login, and the
// privileged administrative listing.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"enrolld/internal/account/models"
	"enrolld/internal/account/secrets"
	"enrolld/internal/account/store"
	"enrolld/internal/platform/metrics"
	dErrors "enrolld/pkg/domain-errors"
	"enrolld/pkg/platform/sentinel"
)

// Registry orchestrates account lifecycle. Accounts are immutable after
// signup; there is no update or delete operation.
type Registry struct {
	accounts store.Store
	hasher   *secrets.Hasher
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewRegistry(accounts store.Store, hasher *secrets.Hasher, logger *slog.Logger, m *metrics.Metrics) *Registry {
	return &Registry{accounts: accounts, hasher: hasher, logger: logger, metrics: m}
}

// Signup registers a new account. Email uniqueness is case-insensitive and
// enforced atomically by the store. The returned summary never carries the
// password hash.
func (r *Registry) Signup(ctx context.Context, name, email, password string) (models.Summary, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return models.Summary{}, dErrors.New(dErrors.CodeInvalidInput, "name, email and password are required")
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return models.Summary{}, err
	}

	account := models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := r.accounts.Append(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return models.Summary{}, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return models.Summary{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not persist account")
	}

	r.metrics.IncrementSignups()
	r.logger.InfoContext(ctx, "account created", "account_id", account.ID)
	return account.Summary(), nil
}

// Login verifies credentials. An unknown email and a wrong password fail
// with the same Unauthorized error so callers cannot enumerate accounts.
func (r *Registry) Login(ctx context.Context, email, password string) (models.Summary, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.Summary{}, dErrors.New(dErrors.CodeInvalidInput, "email and password are required")
	}

	account, err := r.accounts.FindByEmailFold(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			r.metrics.IncrementLogins("denied")
			return models.Summary{}, errInvalidCredentials()
		}
		return models.Summary{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not read accounts")
	}
	if !r.hasher.Verify(password, account.PasswordHash) {
		r.metrics.IncrementLogins("denied")
		return models.Summary{}, errInvalidCredentials()
	}

	r.metrics.IncrementLogins("ok")
	return account.Summary(), nil
}

// ListAll returns every account including hash material. Callers must
// treat this as privileged.
func (r *Registry) ListAll(ctx context.Context) ([]models.Account, error) {
	accounts, err := r.accounts.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not read accounts")
	}
	return accounts, nil
}

// errInvalidCredentials is deliberately identical for "no such account"
// and "wrong password".
func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}
