package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anything2image/gallery-api/internal/api/metrics"
	"github.com/anything2image/gallery-api/internal/core/domain"
	"github.com/anything2image/gallery-api/internal/core/ports"
)

// SessionService issues and resolves session tokens. A token is a signed
// JWT (sub = user id, jti = session id) whose jti must also be live in the
// server-side session store; revoking the jti invalidates the token before
// its expiry.
type SessionService struct {
	accounts ports.AccountRepository
	store    ports.SessionStore
	secret   string
	ttl      time.Duration
	log      zerolog.Logger
}

func NewSessionService(accounts ports.AccountRepository, store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{accounts: accounts, store: store, secret: secret, ttl: ttl, log: log}
}

// Issue signs a token for the user and registers its session id.
func (s *SessionService) Issue(ctx context.Context, user *domain.User) (string, error) {
	sessionID := uuid.NewString()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"jti": sessionID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	if err := s.store.Put(ctx, sessionID, user.ID, s.ttl); err != nil {
		return "", fmt.Errorf("register session: %w", err)
	}

	s.log.Debug().Str("user_id", user.ID).Msg("session issued")
	return token, nil
}

// Resolve verifies the token and returns the account it identifies. It
// performs exactly one account lookup and has no side effects. All failure
// modes collapse into domain.ErrUnauthenticated: the caller must not be
// able to tell a revoked session from a deleted account.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	userID, sessionID, err := s.parse(token)
	if err != nil {
		metrics.SessionResolutionsTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrUnauthenticated
	}

	storedUserID, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			metrics.SessionResolutionsTotal.WithLabelValues("revoked").Inc()
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if storedUserID != userID {
		metrics.SessionResolutionsTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SessionResolutionsTotal.WithLabelValues("unknown_user").Inc()
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	metrics.SessionResolutionsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// Revoke deletes the token's session id from the store. Expired and
// malformed tokens are ignored: logout never fails the request over a
// token that already grants nothing.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	_, sessionID, err := s.parseUnvalidated(token)
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *SessionService) parse(token string) (userID, sessionID string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrUnauthenticated
	}
	return claimStrings(claims)
}

// parseUnvalidated skips claim validation so an expired token can still
// identify the session to delete. The signature is still verified.
func (s *SessionService) parseUnvalidated(token string) (userID, sessionID string, err error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return "", "", domain.ErrUnauthenticated
	}
	return claimStrings(claims)
}

func (s *SessionService) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return []byte(s.secret), nil
}

func claimStrings(claims jwt.MapClaims) (userID, sessionID string, err error) {
	userID, _ = claims["sub"].(string)
	sessionID, _ = claims["jti"].(string)
	if userID == "" || sessionID == "" {
		return "", "", domain.ErrUnauthenticated
	}
	return userID, sessionID, nil
}
