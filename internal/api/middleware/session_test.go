package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/domain"
)

// stubAuth resolves a single known token to a fixed user.
type stubAuth struct {
	token string
	user  *domain.User
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubAuth) IssueToken(string, bool) (string, time.Duration, error) {
	return s.token, time.Hour, nil
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token == s.token {
		return s.user, nil
	}
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuth) Revoke(context.Context, string) error { return nil }

func newSessionFixture(mode FailureMode) (*stubAuth, echo.HandlerFunc, echo.MiddlewareFunc) {
	auth := &stubAuth{
		token: "good-token",
		user:  &domain.User{ID: "usr001", Username: "alice", Role: domain.RoleEmployee},
	}
	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return auth, handler, Session(auth, mode)
}

func doRequest(t *testing.T, mw echo.MiddlewareFunc, handler echo.HandlerFunc, cookie *http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(handler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c
}

func TestSession_ValidCookie(t *testing.T) {
	auth, handler, mw := newSessionFixture(FailWithStatus)

	rec, c := doRequest(t, mw, handler, &http.Cookie{Name: CookieName, Value: "good-token"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	user, ok := c.Get(ContextKeyUser).(*domain.User)
	if !ok || user.ID != auth.user.ID {
		t.Fatalf("user not stored in context: %v", c.Get(ContextKeyUser))
	}
	if role, _ := c.Get(ContextKeyRole).(string); role != domain.RoleEmployee {
		t.Fatalf("role not stored in context: %v", c.Get(ContextKeyRole))
	}
}

func TestSession_MissingCookie_APIRoute(t *testing.T) {
	_, handler, mw := newSessionFixture(FailWithStatus)

	rec, _ := doRequest(t, mw, handler, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSession_MissingCookie_PageRoute(t *testing.T) {
	_, handler, mw := newSessionFixture(FailWithRedirect)

	rec, _ := doRequest(t, mw, handler, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestSession_InvalidToken_SameAsMissing(t *testing.T) {
	_, handler, mw := newSessionFixture(FailWithStatus)

	rec, _ := doRequest(t, mw, handler, &http.Cookie{Name: CookieName, Value: "forged"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	recMissing, _ := doRequest(t, mw, handler, nil)
	if rec.Body.String() != recMissing.Body.String() {
		t.Fatalf("invalid token and missing cookie should be indistinguishable: %q vs %q", rec.Body.String(), recMissing.Body.String())
	}
}

func TestSession_EmptyCookieValue(t *testing.T) {
	_, handler, mw := newSessionFixture(FailWithRedirect)

	rec, _ := doRequest(t, mw, handler, &http.Cookie{Name: CookieName, Value: ""})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestRBAC(t *testing.T) {
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"allowed role", domain.RoleAdmin, []string{domain.RoleAdmin}, http.StatusOK},
		{"second allowed role", domain.RoleEmployee, []string{domain.RoleAdmin, domain.RoleEmployee}, http.StatusOK},
		{"denied role", domain.RoleClient, []string{domain.RoleAdmin}, http.StatusForbidden},
		{"no role in context", "", []string{domain.RoleAdmin}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != "" {
				c.Set(ContextKeyRole, tc.role)
			}
			if err := RBAC(tc.allowed...)(handler)(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
