// Package filestore provides durable, whole-collection persistence: one
// JSON file per record type, replaced in full on every mutation. It is the
// storage primitive every registry in this service is built on. The design
// trades throughput for simplicity and is sized for catalog-scale data,
// not for collections past a few thousand records.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a durable mapping persisted as a single JSON array.
//
// All mutations go through Update, which holds a per-collection mutex
// across the load-modify-save cycle. That serialization gate removes the
// lost-update race between concurrent writers without changing the
// external contract.
type Collection[T any] struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// New builds a collection backed by the file at path. The file does not
// need to exist yet; a missing file reads as an empty collection.
func New[T any](path string, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{path: path, logger: logger}
}

// Load reads the whole collection. A missing, unreadable, or structurally
// invalid file is downgraded to an empty collection rather than an error;
// the downgrade is logged so operators can tell data loss from an empty
// dataset. Only context cancellation is surfaced.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.load(ctx), nil
}

func (c *Collection[T]) load(ctx context.Context) []T {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.WarnContext(ctx, "collection unreadable, treating as empty",
				"path", c.path,
				"error", err,
			)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		c.logger.WarnContext(ctx, "collection corrupt, treating as empty",
			"path", c.path,
			"error", err,
		)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Replace serializes the entire collection and overwrites the backing file
// atomically: write to a temp file in the same directory, sync, rename. A
// crash mid-write leaves the previous contents intact.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replace(records)
}

func (c *Collection[T]) replace(records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write collection: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync collection: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("replace collection: %w", err)
	}
	return nil
}

// Update runs one load-modify-save cycle under the collection's mutex.
// fn receives the current records and returns the records to persist;
// returning an error aborts the cycle without writing.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load(ctx))
	if err != nil {
		return err
	}
	return c.replace(records)
}
