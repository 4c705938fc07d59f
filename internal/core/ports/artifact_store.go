package ports

import (
	"context"
	"io"
)

// ArtifactStore abstracts the binary backend holding uploaded images.
// Keys are flat strings; implementations must make Put atomic with respect
// to concurrent readers (a reader sees the old bytes or the new bytes,
// never a torn write).
type ArtifactStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
