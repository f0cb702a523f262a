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

// ErrProtectedUser is returned when deleting the protected admin account.
var ErrProtectedUser = errors.New("protected_user")

// UserService handles user administration.
type UserService struct {
	Store store.Store
}

// Create registers a new user. The username must be unique; the password is
// stored only as an argon2id hash.
func (s *UserService) Create(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	if username == "" {
		return domain.User{}, domain.Missing("username")
	}
	if password == "" {
		return domain.User{}, domain.Missing("password")
	}
	if !role.Valid() {
		return domain.User{}, domain.Invalid("role", "unknown role")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Store.Users().Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created", "username", username, "role", role.String())
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, id)
}

// ListAll returns every user in insertion order.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAll(ctx)
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return domain.Invalid("role", "unknown role")
	}
	return s.Store.Users().UpdateRole(ctx, id, role)
}

func (s *UserService) UpdatePassword(ctx context.Context, id, password string) error {
	if password == "" {
		return domain.Missing("password")
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdatePasswordHash(ctx, id, hash)
}

// Delete removes a user. The account named "admin" is protected so the system
// always stays administrable, regardless of who asks.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Username == domain.ProtectedAdminUsername {
		return ErrProtectedUser
	}

	if err := s.Store.Users().Delete(ctx, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user deleted", "username", user.Username)
	return nil
}
