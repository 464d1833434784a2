package service

import (
	"context"
	"io"
)

// ImageStorage abstracts the blob store holding uploaded media. The core only
// ever asks for an object to be stored and gets back a public URL; it never
// implements storage itself.
type ImageStorage interface {
	// Store writes the object under the given key and returns its public URL.
	Store(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}
