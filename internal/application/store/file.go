package store

import (
	"context"
	"log/slog"
	"path/filepath"

	"enrolld/internal/application/models"
	"enrolld/internal/storage/filestore"
	"enrolld/pkg/platform/sentinel"
)

const fileName = "applications.json"

// FileStore persists the ledger as one JSON file, with sequence-assigned
// identifiers computed inside the collection's update gate.
type FileStore struct {
	coll *filestore.Collection[models.Application]
}

func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		coll: filestore.New[models.Application](filepath.Join(dataDir, fileName), logger),
	}
}

func (s *FileStore) All(ctx context.Context) ([]models.Application, error) {
	return s.coll.Load(ctx)
}

func (s *FileStore) Append(ctx context.Context, app models.Application) (models.Application, error) {
	err := s.coll.Update(ctx, func(apps []models.Application) ([]models.Application, error) {
		app.ID = nextID(apps)
		return append(apps, app), nil
	})
	if err != nil {
		return models.Application{}, err
	}
	return app, nil
}

func (s *FileStore) Delete(ctx context.Context, id int64) error {
	return s.coll.Update(ctx, func(apps []models.Application) ([]models.Application, error) {
		for i, existing := range apps {
			if existing.ID == id {
				return append(apps[:i], apps[i+1:]...), nil
			}
		}
		return nil, sentinel.ErrNotFound
	})
}

func nextID(apps []models.Application) int64 {
	var max int64
	for _, app := range apps {
		if app.ID > max {
			max = app.ID
		}
	}
	return max + 1
}
