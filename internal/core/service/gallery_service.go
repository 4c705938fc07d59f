package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anything2image/gallery-api/internal/api/metrics"
	"github.com/anything2image/gallery-api/internal/core/domain"
	"github.com/anything2image/gallery-api/internal/core/ports"
)

// GalleryService creates and lists artwork entries. Entries are append
// only: there is no update or delete path.
type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

func (s *GalleryService) Create(ctx context.Context, ownerID string, in ports.CreateArtworkInput) (*domain.Artwork, error) {
	for _, field := range []string{
		in.ArtName, in.Description, in.Prompt, in.Animal,
		in.OriginalImageURL, in.MaskedImageURL, in.FinalImageURL,
	} {
		if strings.TrimSpace(field) == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	art := &domain.Artwork{
		UserID:           ownerID,
		ArtName:          in.ArtName,
		Description:      in.Description,
		Prompt:           in.Prompt,
		Animal:           in.Animal,
		OriginalImageURL: in.OriginalImageURL,
		MaskedImageURL:   in.MaskedImageURL,
		FinalImageURL:    in.FinalImageURL,
		CreatedAt:        time.Now().UTC(),
	}

	stored, err := s.repo.Insert(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}

	metrics.ArtworksCreatedTotal.Inc()
	s.log.Info().Str("user_id", ownerID).Str("artwork_id", stored.ID).Msg("artwork created")
	return stored, nil
}

// ListByUser returns userID's gallery sorted by created_at ascending. The
// resolved session identity must match the requested user id: gallery
// listing is private, not public-by-id.
func (s *GalleryService) ListByUser(ctx context.Context, callerID, userID string) ([]domain.Artwork, error) {
	if callerID != userID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByUser(ctx, userID)
}
