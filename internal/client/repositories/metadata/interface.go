// Package metadata is the on-device key/value store. Each key holds one
// opaque blob that is always read and written whole.
package metadata

import (
	"context"
)

// Repository is a whole-blob key/value store.
//
// Get returns (nil, nil) when the key is absent. Delete of a missing key is
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
