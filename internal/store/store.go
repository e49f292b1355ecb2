package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"timin-server/internal/models"
)

// Collection is a flat JSON record collection persisted as a single document.
// Save writes to a sibling temp file and renames it into place, so a reader
// never observes a partial write. Update serializes read-modify-write cycles
// for one collection behind a mutex; cross-collection operations are not
// transactional.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load returns all records in insertion order. A missing or unreadable file
// yields an empty collection rather than an error.
func (c *Collection[T]) Load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if len(raw) == 0 || json.Unmarshal(raw, &records) != nil || records == nil {
		return []T{}, nil
	}
	return records, nil
}

func (c *Collection[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Update runs fn over the current records and persists the result. If fn
// returns an error nothing is written. Concurrent updates to the same
// collection are serialized.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.Load()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.Save(updated)
}

// Stores bundles the three marketplace collections.
type Stores struct {
	Users   *Collection[models.User]
	Shifts  *Collection[models.Shift]
	Reviews *Collection[models.Review]
}

// Open creates the data directory and empty collection files on first run.
func Open(dataDir string) (*Stores, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Stores{
		Users:   NewCollection[models.User](filepath.Join(dataDir, "users.json")),
		Shifts:  NewCollection[models.Shift](filepath.Join(dataDir, "shifts.json")),
		Reviews: NewCollection[models.Review](filepath.Join(dataDir, "reviews.json")),
	}

	for _, path := range []string{s.Users.path, s.Shifts.path, s.Reviews.path} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("init %s: %w", path, err)
			}
		}
	}

	return s, nil
}
