package ports

import (
	"context"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

type AccountService interface {
	// Register creates a new account. Duplicate email yields
	// domain.ErrUserExists, empty fields domain.ErrInvalidInput.
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a session token together with
	// the authenticated user. Unknown email and wrong password are
	// indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the session identified by token. Revoking an unknown
	// or already-expired token is not an error.
	Logout(ctx context.Context, token string) error
}
