// Package metadata stores small named values (the session credential, the
// last login email) in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a durable string key/value store.
type Repository interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
