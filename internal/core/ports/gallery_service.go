package ports

import (
	"context"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

// CreateArtworkInput carries all fields of a new gallery entry. Every
// field is required.
type CreateArtworkInput struct {
	ArtName          string
	Description      string
	Prompt           string
	Animal           string
	OriginalImageURL string
	MaskedImageURL   string
	FinalImageURL    string
}

type GalleryService interface {
	Create(ctx context.Context, ownerID string, in CreateArtworkInput) (*domain.Artwork, error)
	// ListByUser returns the user's gallery entries in created_at order.
	// callerID must match userID; listing another user's gallery yields
	// domain.ErrForbidden.
	ListByUser(ctx context.Context, callerID, userID string) ([]domain.Artwork, error)
}
