package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

type stubAccountRepo struct {
	users  map[string]*domain.User // keyed by email (unique index stand-in)
	nextID int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Images = append([]domain.ImageRecord(nil), u.Images...)
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = string(rune('a' + r.nextID))
	r.users[created.Email] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) PushImage(_ context.Context, userID string, img domain.ImageRecord) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.Images = append(u.Images, img)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubAccountRepo) EnsureIndexes(_ context.Context) error { return nil }

// stubSessionService issues predictable tokens and records revocations.
type stubSessionService struct {
	issued  map[string]string // token -> user id
	revoked []string
}

func newStubSessionService() *stubSessionService {
	return &stubSessionService{issued: make(map[string]string)}
}

func (s *stubSessionService) Issue(_ context.Context, user *domain.User) (string, error) {
	token := "tok-" + user.ID
	s.issued[token] = user.ID
	return token, nil
}

func (s *stubSessionService) Resolve(_ context.Context, token string) (*domain.User, error) {
	if id, ok := s.issued[token]; ok {
		return &domain.User{ID: id}, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (s *stubSessionService) Revoke(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	delete(s.issued, token)
	return nil
}

func TestAccountService_Register_HashesPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, newStubSessionService(), zerolog.Nop())

	user, err := svc.Register(context.Background(), "Ann", "a@x.com", "p4ssword")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}

	stored := repo.users["a@x.com"]
	if stored.PasswordHash == "p4ssword" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p4ssword")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionService(), zerolog.Nop())

	cases := []struct {
		fullName, email, password string
	}{
		{"", "a@x.com", "p"},
		{"Ann", "", "p"},
		{"Ann", "a@x.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.fullName, tc.email, tc.password); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", tc, err)
		}
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionService(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Ann", "a@x.com", "p4ssword"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other Ann", "a@x.com", "different"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionService()
	svc := NewAccountService(repo, sessions, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Ann", "a@x.com", "p4ssword"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@x.com", "p4ssword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.FullName != "Ann" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sessions.issued[token] != user.ID {
		t.Fatalf("session not registered for user")
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionService(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Ann", "a@x.com", "p4ssword"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_UnknownEmailSameError(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), newStubSessionService(), zerolog.Nop())

	// Unknown email must be indistinguishable from a wrong password.
	if _, _, err := svc.Login(context.Background(), "nobody@x.com", "p4ssword"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Logout_RevokesSession(t *testing.T) {
	sessions := newStubSessionService()
	svc := NewAccountService(newStubAccountRepo(), sessions, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Ann", "a@x.com", "p4ssword"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "a@x.com", "p4ssword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected revoked session, got %v", err)
	}
}
