// Package metadata stores the client's small key/value settings, such as the
// bearer token, in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a persistent string key/value store.
//
// Get reports ok=false for a missing key rather than returning an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
