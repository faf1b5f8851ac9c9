// Package storage provides the object store that holds pet images. Records
// persist only the public URL returned by Upload, never the bytes.
package storage

import (
	"context"
	"io"
)

// ObjectStore stores binary objects under a key and returns a publicly
// resolvable URL for each stored object.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
