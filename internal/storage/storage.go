// Package storage persists uploaded media files.
package storage

import (
	"context"
	"io"
)

// URLPrefix is the public path uploaded files are served under
const URLPrefix = "/uploads/"

// Store saves an uploaded file under name and returns its public URL
type Store interface {
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
	Name() string
}
