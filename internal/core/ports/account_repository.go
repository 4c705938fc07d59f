package ports

import (
	"context"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

// AccountRepository defines the persistence interface for user accounts.
// Create must surface the store's unique-email violation as
// domain.ErrUserExists: the index, not a prior read, is the authoritative
// uniqueness check under concurrent registration.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	PushImage(ctx context.Context, userID string, img domain.ImageRecord) error
	EnsureIndexes(ctx context.Context) error
}
