package ports

import (
	"context"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

// GalleryRepository defines the persistence interface for gallery entries.
// ListByUser returns entries sorted by created_at ascending.
type GalleryRepository interface {
	Insert(ctx context.Context, art *domain.Artwork) (*domain.Artwork, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Artwork, error)
	EnsureIndexes(ctx context.Context) error
}
