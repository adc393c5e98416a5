package store

import (
	"context"
	"log/slog"
	"path/filepath"

	"enrolld/internal/institution/models"
	"enrolld/internal/storage/filestore"
	"enrolld/pkg/platform/sentinel"
)

const fileName = "institutions.json"

// FileStore persists the catalog as one JSON file. Identifiers come from a
// per-collection sequence: next ID is max existing ID + 1, computed inside
// the collection's update gate, so IDs are unique by construction.
type FileStore struct {
	coll *filestore.Collection[models.Institution]
}

func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		coll: filestore.New[models.Institution](filepath.Join(dataDir, fileName), logger),
	}
}

func (s *FileStore) All(ctx context.Context) ([]models.Institution, error) {
	return s.coll.Load(ctx)
}

func (s *FileStore) Create(ctx context.Context, inst models.Institution) (models.Institution, error) {
	err := s.coll.Update(ctx, func(institutions []models.Institution) ([]models.Institution, error) {
		inst.ID = nextID(institutions)
		return append(institutions, inst), nil
	})
	if err != nil {
		return models.Institution{}, err
	}
	return inst, nil
}

func (s *FileStore) Replace(ctx context.Context, id int64, inst models.Institution) error {
	return s.coll.Update(ctx, func(institutions []models.Institution) ([]models.Institution, error) {
		for i, existing := range institutions {
			if existing.ID == id {
				inst.ID = id
				institutions[i] = inst
				return institutions, nil
			}
		}
		return nil, sentinel.ErrNotFound
	})
}

func (s *FileStore) Delete(ctx context.Context, id int64) error {
	return s.coll.Update(ctx, func(institutions []models.Institution) ([]models.Institution, error) {
		for i, existing := range institutions {
			if existing.ID == id {
				return append(institutions[:i], institutions[i+1:]...), nil
			}
		}
		return nil, sentinel.ErrNotFound
	})
}

func nextID(institutions []models.Institution) int64 {
	var max int64
	for _, inst := range institutions {
		if inst.ID > max {
			max = inst.ID
		}
	}
	return max + 1
}
