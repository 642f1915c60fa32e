// Package storage provides blob stores for artifact media. Circles only
// keep metadata; the bytes land here.
package storage

import (
	"context"
	"io"
)

// BlobStore writes artifact media and returns the storage path recorded on
// the artifact. Put must be all-or-nothing: a failed write leaves no partial
// object behind.
type BlobStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
