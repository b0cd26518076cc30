// Package storage defines the key-value contract the persistent backends
// implement. Values are opaque bytes; callers choose the encoding.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// KV is a small named-key store that survives process restarts.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
