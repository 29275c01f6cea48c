// Package objstore defines the object storage interface used for cloud
// uploads and downloads.
package objstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an object does not exist in the store.
var ErrNotFound = errors.New("objstore: object not found")

// ErrTransferFailed is returned when an upload or download fails.
var ErrTransferFailed = errors.New("objstore: transfer failed")

// Store defines the interface for object storage backends. A Store is
// bound to a single bucket at construction time; implementations handle
// authentication and wire details internally.
//
// Transfers are single-shot: no retries, no partial resume.
type Store interface {
	// Upload copies the local file at localPath to the object key.
	Upload(ctx context.Context, localPath, key string) error

	// Download copies the object at key to the local file at localPath,
	// overwriting it. Returns ErrNotFound if the object does not exist.
	Download(ctx context.Context, localPath, key string) error

	// List returns the keys of all objects under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
