package ports

import (
	"context"
	"time"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

// SessionService binds requests to previously authenticated identities.
// Tokens are signed and additionally tracked server-side so that logout
// genuinely revokes them before expiry.
type SessionService interface {
	Issue(ctx context.Context, user *domain.User) (string, error)
	// Resolve turns a caller-supplied token into a verified user. Every
	// failure mode (bad signature, expired, revoked, no matching account)
	// uniformly yields domain.ErrUnauthenticated so the response never
	// leaks whether an account exists.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Revoke(ctx context.Context, token string) error
}

// SessionStore is the server-side session registry keyed by session id.
type SessionStore interface {
	Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
