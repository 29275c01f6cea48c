// Package gcsstore implements a Google Cloud Storage backend.
package gcsstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/treepress/treepress/internal/objstore"
)

// Compile-time check that Store implements objstore.Store.
var _ objstore.Store = (*Store)(nil)

// Store is a Google Cloud Storage backend.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// New creates a new GCS store bound to the given bucket.
// The bucket must already exist.
func New(ctx context.Context, bucketName string, opts ...Option) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	s := &Store{
		client: client,
		bucket: client.Bucket(bucketName),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets a key prefix for all operations.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = strings.TrimSuffix(prefix, "/")
		if s.prefix != "" {
			s.prefix += "/"
		}
	}
}

// Upload copies the local file at localPath to the given object key.
func (s *Store) Upload(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}
	defer file.Close()

	writer := s.bucket.Object(s.prefix + key).NewWriter(ctx)
	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}

	return nil
}

// Download copies the object at key to the local file at localPath.
func (s *Store) Download(ctx context.Context, localPath, key string) error {
	reader, err := s.bucket.Object(s.prefix + key).NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return objstore.ErrNotFound
		}
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}
	defer reader.Close()

	file, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %v", objstore.ErrTransferFailed, err)
	}

	return nil
}

// List returns the keys of all objects under the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: s.prefix + prefix})

	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}
		keys = append(keys, strings.TrimPrefix(attrs.Name, s.prefix))
	}

	return keys, nil
}

// Close releases resources.
func (s *Store) Close() error {
	return s.client.Close()
}
