// Package service implements the institution catalog: filtered queries and
// full CRUD over the stored institutions.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"enrolld/internal/institution/models"
	"enrolld/internal/institution/store"
	dErrors "enrolld/pkg/domain-errors"
	"enrolld/pkg/platform/sentinel"
)

type Catalog struct {
	institutions store.Store
	logger       *slog.Logger
}

func NewCatalog(institutions store.Store, logger *slog.Logger) *Catalog {
	return &Catalog{institutions: institutions, logger: logger}
}

// Query returns the institutions matching every set filter, plus the
// matched count.
func (c *Catalog) Query(ctx context.Context, filter models.Filter) ([]models.Institution, int, error) {
	institutions, err := c.institutions.All(ctx)
	if err != nil {
		return nil, 0, dErrors.Wrap(err, dErrors.CodeInternal, "could not read institutions")
	}

	matched := make([]models.Institution, 0, len(institutions))
	for _, inst := range institutions {
		if matches(inst, filter) {
			matched = append(matched, inst)
		}
	}
	return matched, len(matched), nil
}

// GetByID returns the institution with the given identifier.
func (c *Catalog) GetByID(ctx context.Context, id int64) (models.Institution, error) {
	institutions, err := c.institutions.All(ctx)
	if err != nil {
		return models.Institution{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not read institutions")
	}
	for _, inst := range institutions {
		if inst.ID == id {
			return inst, nil
		}
	}
	return models.Institution{}, dErrors.New(dErrors.CodeNotFound, "institution not found")
}

// Create stores a new institution. A caller-supplied ID is ignored; the
// store assigns the next one in sequence.
func (c *Catalog) Create(ctx context.Context, inst models.Institution) (models.Institution, error) {
	if strings.TrimSpace(inst.Name) == "" {
		return models.Institution{}, dErrors.New(dErrors.CodeInvalidInput, "institution name is required")
	}

	created, err := c.institutions.Create(ctx, inst)
	if err != nil {
		return models.Institution{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not persist institution")
	}
	c.logger.InfoContext(ctx, "institution created", "institution_id", created.ID)
	return created, nil
}

// Replace swaps the whole record stored under id. The body's ID is forced
// to the path ID regardless of what the caller sent.
func (c *Catalog) Replace(ctx context.Context, id int64, inst models.Institution) (models.Institution, error) {
	if err := c.institutions.Replace(ctx, id, inst); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Institution{}, dErrors.New(dErrors.CodeNotFound, "institution not found")
		}
		return models.Institution{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not persist institution")
	}
	inst.ID = id
	return inst, nil
}

// Delete removes the institution with the given identifier.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.institutions.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "institution not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist institutions")
	}
	return nil
}

func matches(inst models.Institution, filter models.Filter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(inst.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Type != "" && inst.Type != filter.Type {
		return false
	}
	if filter.College != "" && !hasCollege(inst, filter.College) {
		return false
	}
	return true
}

func hasCollege(inst models.Institution, name string) bool {
	for _, college := range inst.Colleges {
		if college.Name == name {
			return true
		}
	}
	return false
}
