package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// RevocationStore abstracts the revoked-token list (Redis). Keys are
// SHA-256 digests of the raw token, never the token itself.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// AuthService implements login, session token issuance, and resolution of
// inbound tokens to user records.
type AuthService struct {
	users   ports.UserRepository
	tokens  *TokenIssuer
	revoked RevocationStore
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenIssuer, revoked RevocationStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoked: revoked, log: log}
}

// Login verifies a username/password pair. Unknown user and wrong
// password are indistinguishable from the outside.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken mints a session token for the user.
func (s *AuthService) IssueToken(userID string, remember bool) (string, time.Duration, error) {
	return s.tokens.Issue(userID, remember)
}

// Authenticate resolves a raw token to a full user record. A token whose
// subject no longer exists is rejected: a deleted user must not keep a
// working session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, _, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	revoked, err := s.revoked.IsRevoked(ctx, tokenDigest(token))
	if err != nil {
		s.log.Warn().Err(err).Msg("revocation check failed, treating token as live")
	} else if revoked {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Revoke marks a still-valid token revoked until its natural expiry.
// Tokens that no longer verify need no denylist entry.
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	_, expiresAt, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, tokenDigest(token), remaining)
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
