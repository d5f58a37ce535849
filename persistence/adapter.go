// Package persistence provides durable key/value backends for the token and alert collections.
package persistence

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Entry is one key/value pair written by Set.
type Entry struct {
	Key   string
	Value []byte
}

// Adapter is the storage contract the store depends on.
// Set must commit every entry or none of them.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, entries ...Entry) error
	Close() error
}
