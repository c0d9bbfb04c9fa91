// /internal/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keshon/datastore"
)

// Storage keeps one serialized entity record per user id on top of the
// JSON datastore. The datastore handles atomic writes and autosave;
// this layer only shapes records. Writes live in memory until the
// autosave tick or Close flushes them.
type Storage struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc
}

func New(filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

// Close flushes and shuts the store down. Safe to call more than once.
func (s *Storage) Close() error {
	// The autosave goroutine exits only on context cancellation and the
	// store's Close waits for it; cancel first or Close never returns.
	s.cancel()
	return s.ds.Close()
}

// LoadEntity returns the raw JSON blob for a user, or false when the
// user has no record yet.
func (s *Storage) LoadEntity(userID string) ([]byte, bool) {
	var blob json.RawMessage
	ok, err := s.ds.Get(entityKey(userID), &blob)
	if err != nil || !ok {
		return nil, false
	}
	return blob, true
}

// SaveEntity writes the blob for a user. Every mutating operation
// re-serializes the full record; last write wins.
func (s *Storage) SaveEntity(userID string, blob []byte) error {
	if err := s.ds.Set(entityKey(userID), json.RawMessage(blob)); err != nil {
		return fmt.Errorf("failed to persist entity for %s: %w", userID, err)
	}
	return nil
}

// DeleteEntity removes a user's record (explicit account deletion only).
func (s *Storage) DeleteEntity(userID string) error {
	return s.ds.Delete(entityKey(userID))
}

func entityKey(userID string) string {
	return "entity:" + userID
}
