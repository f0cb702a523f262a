package service

import (
	"context"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
	"github.com/clinsuite/endotrace/pkg/slogx"
)

// EnsureAdmin seeds the first admin account on an empty user table so a fresh
// deployment can be logged into. It does nothing once any user exists.
func EnsureAdmin(ctx context.Context, st store.Store, username, password string) error {
	empty, err := st.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	users := UserService{Store: st}
	if _, err := users.Create(ctx, username, password, domain.RoleAdmin); err != nil {
		return err
	}

	slogx.FromContext(ctx).Warn("bootstrap admin created, change the password",
		"username", username)
	return nil
}
