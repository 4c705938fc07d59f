package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anything2image/gallery-api/internal/api/metrics"
	"github.com/anything2image/gallery-api/internal/core/domain"
	"github.com/anything2image/gallery-api/internal/core/ports"
)

// ImageService stores uploaded images and their metadata. The storage key
// is always `<ownerID>_<filename>` derived from the authenticated owner,
// never from caller-supplied ownership claims, so filename guessing cannot
// cross user boundaries.
type ImageService struct {
	accounts ports.AccountRepository
	store    ports.ArtifactStore
	log      zerolog.Logger
}

func NewImageService(accounts ports.AccountRepository, store ports.ArtifactStore, log zerolog.Logger) *ImageService {
	return &ImageService{accounts: accounts, store: store, log: log}
}

// Save writes the bytes first and appends the ImageRecord second. The two
// effects have no joint atomicity: when the metadata append fails the file
// stays behind as an orphan, which is counted and logged with its key so a
// reconciliation sweep can find it.
func (s *ImageService) Save(ctx context.Context, ownerID string, in ports.SaveImageInput) (*domain.ImageRecord, error) {
	fname := sanitizeFilename(in.Filename)
	if fname == "" {
		return nil, domain.ErrInvalidInput
	}

	key := artifactKey(ownerID, fname)
	if err := s.store.Put(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	rec := domain.ImageRecord{
		Fname:       fname,
		Description: in.Description,
		SizeBytes:   in.Size,
		ContentType: in.ContentType,
		UploadedAt:  time.Now().UTC(),
	}

	if err := s.accounts.PushImage(ctx, ownerID, rec); err != nil {
		metrics.OrphanedArtifactsTotal.Inc()
		s.log.Error().Err(err).
			Str("user_id", ownerID).
			Str("key", key).
			Msg("image stored but metadata append failed; file orphaned")
		return nil, fmt.Errorf("record image: %w", err)
	}

	metrics.ImagesSavedTotal.Inc()
	metrics.ImageSaveBytes.Observe(float64(in.Size))
	s.log.Info().Str("user_id", ownerID).Str("fname", fname).Msg("image saved")
	return &rec, nil
}

// Open returns the owner's stored bytes. The ImageRecord and the backing
// object must BOTH exist; metadata without a file (or the reverse) is
// domain.ErrImageNotFound, never a crash.
func (s *ImageService) Open(ctx context.Context, ownerID, filename string) (io.ReadCloser, *domain.ImageRecord, error) {
	if sanitizeFilename(filename) != filename {
		return nil, nil, domain.ErrImageNotFound
	}

	user, err := s.accounts.FindByID(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	rec := user.FindImage(filename)
	if rec == nil {
		return nil, nil, domain.ErrImageNotFound
	}

	key := artifactKey(ownerID, filename)
	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("stat image: %w", err)
	}
	if !exists {
		s.log.Warn().Str("user_id", ownerID).Str("key", key).
			Msg("image record has no backing file")
		return nil, nil, domain.ErrImageNotFound
	}

	rc, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil, nil, domain.ErrImageNotFound
		}
		return nil, nil, fmt.Errorf("open image: %w", err)
	}
	return rc, rec, nil
}

// List returns the owner's image records in append order.
func (s *ImageService) List(ctx context.Context, ownerID string) ([]domain.ImageRecord, error) {
	user, err := s.accounts.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return user.Images, nil
}

// sanitizeFilename strips any path components from an uploaded filename.
// Browsers may send full paths; only the base name ever reaches storage.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || strings.Contains(name, "..") {
		return ""
	}
	return name
}

func artifactKey(ownerID, fname string) string {
	return ownerID + "_" + fname
}
