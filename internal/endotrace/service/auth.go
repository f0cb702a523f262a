package service

import (
	"context"
	"errors"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/cryptox"
	"github.com/clinsuite/endotrace/pkg/idx"
	"github.com/clinsuite/endotrace/pkg/slogx"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike, so callers cannot enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// AuthService validates credentials and manages server-side sessions.
type AuthService struct {
	Store store.Store
}

// Authenticate verifies a username/password pair and, on success, creates a
// session carrying the (username, role) identity snapshot. The returned token
// is the only copy of the cookie value; the store keeps its fingerprint.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.Session, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, "", ErrInvalidCredentials
		}
		return domain.Session{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.Session{}, "", ErrInvalidCredentials
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, "", err
	}

	session := domain.Session{
		ID:               idx.New().String(),
		TokenFingerprint: cryptox.FingerprintToken(token),
		UserID:           user.ID,
		Username:         user.Username,
		Role:             user.Role,
	}
	if err := s.Store.Sessions().Create(ctx, session); err != nil {
		return domain.Session{}, "", err
	}

	log.Info("login", "username", user.Username, "role", user.Role.String())
	return session, token, nil
}

// SessionByToken resolves a cookie token to its session identity.
func (s *AuthService) SessionByToken(ctx context.Context, token string) (domain.Session, error) {
	return s.Store.Sessions().GetByFingerprint(ctx, cryptox.FingerprintToken(token))
}

// Logout deletes the session immediately. An already-gone session is not an
// error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, session domain.Session) error {
	err := s.Store.Sessions().Delete(ctx, session.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
