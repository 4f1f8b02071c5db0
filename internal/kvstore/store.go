// Package kvstore wraps the key-value persistence substrate behind a small
// interface: arbitrary JSON values addressed by string key. Reads and writes
// are atomic per key; concurrent writers to the same key race under
// last-write-wins, with no compare-and-swap. Every repository in this
// application stores a whole collection under a single key.
package kvstore

import (
	"context"
	"encoding/json"
)

// Store is the persistence contract. Get returns the raw JSON value and a
// found flag; a missing key is not an error. Set fully replaces any prior
// value under the key.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}
