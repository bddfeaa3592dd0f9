package ports

import (
	"context"
	"time"

	"github.com/connecta/agency-system/internal/core/domain"
)

// AuthService covers the whole session lifecycle: credential check, token
// issuance, token-to-user resolution, and explicit revocation.
type AuthService interface {
	// Login verifies a username/password pair. Unknown user and wrong
	// password both yield domain.ErrInvalidCredentials; callers must not
	// be able to tell which happened.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// IssueToken mints a signed session token for the user. The returned
	// lifetime is the short default, or the extended one when remember is
	// set, and is what the cookie max-age must be derived from.
	IssueToken(userID string, remember bool) (token string, lifetime time.Duration, err error)

	// Authenticate resolves a raw token to a full user record. Any failure
	// mode (bad signature, expiry, revocation, deleted subject) collapses
	// into domain.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// Revoke invalidates a still-valid token ahead of its natural expiry.
	// Revoking an already-invalid token is a no-op, not an error.
	Revoke(ctx context.Context, token string) error
}
