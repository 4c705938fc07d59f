package ports

import (
	"context"
	"io"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

// SaveImageInput carries one uploaded image and its metadata.
type SaveImageInput struct {
	Filename    string
	Description string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ImageService interface {
	// Save writes the image bytes under the owner's key and appends the
	// resulting ImageRecord to the owner's document. Same-owner saves with
	// an identical filename overwrite the previous bytes.
	Save(ctx context.Context, ownerID string, in SaveImageInput) (*domain.ImageRecord, error)
	// Open returns a reader over the owner's stored image. Both the
	// metadata record and the backing object must exist; either one missing
	// yields domain.ErrImageNotFound. The storage key is derived from
	// ownerID only, so a caller can never reach another user's files.
	Open(ctx context.Context, ownerID, filename string) (io.ReadCloser, *domain.ImageRecord, error)
	List(ctx context.Context, ownerID string) ([]domain.ImageRecord, error)
}
