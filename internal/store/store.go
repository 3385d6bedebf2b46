package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrNotFound is returned for keys that were never written, and for keys
// whose stored value can no longer be decoded. Treating a corrupt value as a
// miss lets callers fall back to regeneration instead of failing the read.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed value store. Values are opaque byte slices; the
// JSON codec lives in GetJSON/SetJSON so every driver stores the same format.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON reads key and decodes it into T. A malformed stored value is
// reported as ErrNotFound so the caller regenerates.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var out T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("store: discarding corrupt value for %q: %v", key, err)
		return out, ErrNotFound
	}
	return out, nil
}

// SetJSON encodes value and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
