package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, strings.TrimSpace(rec.Body.String())
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists with this email"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "not authenticated"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrImageNotFound, http.StatusNotFound, "image not found"},
	}
	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
		want := fmt.Sprintf(`{"error":"%s"}`, tc.wantMsg)
		if body != want {
			t.Fatalf("%v: expected %s, got %s", tc.err, want, body)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := render(t, fmt.Errorf("open image: %w", domain.ErrImageNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected wrapped error to map to 404, got %d", code)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if strings.Contains(body, "mongo") {
		t.Fatalf("internal detail leaked: %s", body)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "email is required"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body != `{"error":"email is required"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
