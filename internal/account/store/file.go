package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"enrolld/internal/account/models"
	"enrolld/internal/storage/filestore"
	"enrolld/pkg/platform/sentinel"
)

const fileName = "accounts.json"

// FileStore persists accounts as one JSON file in the data directory.
type FileStore struct {
	coll *filestore.Collection[models.Account]
}

func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		coll: filestore.New[models.Account](filepath.Join(dataDir, fileName), logger),
	}
}

func (s *FileStore) All(ctx context.Context) ([]models.Account, error) {
	return s.coll.Load(ctx)
}

func (s *FileStore) Append(ctx context.Context, account models.Account) error {
	return s.coll.Update(ctx, func(accounts []models.Account) ([]models.Account, error) {
		for _, existing := range accounts {
			if strings.EqualFold(existing.Email, account.Email) {
				return nil, sentinel.ErrConflict
			}
		}
		return append(accounts, account), nil
	})
}

func (s *FileStore) FindByEmailFold(ctx context.Context, email string) (models.Account, error) {
	return s.find(ctx, func(a models.Account) bool {
		return strings.EqualFold(a.Email, email)
	})
}

func (s *FileStore) FindByEmailExact(ctx context.Context, email string) (models.Account, error) {
	return s.find(ctx, func(a models.Account) bool {
		return a.Email == email
	})
}

func (s *FileStore) find(ctx context.Context, match func(models.Account) bool) (models.Account, error) {
	accounts, err := s.coll.Load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, account := range accounts {
		if match(account) {
			return account, nil
		}
	}
	return models.Account{}, sentinel.ErrNotFound
}
