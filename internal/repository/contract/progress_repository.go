package contract

import "context"

// ProgressRepository is a flat string key-value store for client-side
// session progress. Get reports ok=false for a missing key.
type ProgressRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
