package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

func TestUserCreate_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := UserService{Store: newTestStore(t)}

	_, err := users.Create(ctx, "marie", "pw1", domain.RoleSterilisation)
	require.NoError(t, err)

	_, err = users.Create(ctx, "marie", "pw2", domain.RoleAdmin)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUserCreate_Validation(t *testing.T) {
	ctx := context.Background()
	users := UserService{Store: newTestStore(t)}

	var verr *domain.ValidationError

	_, err := users.Create(ctx, "", "pw", domain.RoleAdmin)
	assert.ErrorAs(t, err, &verr)

	_, err = users.Create(ctx, "marie", "", domain.RoleAdmin)
	assert.ErrorAs(t, err, &verr)

	_, err = users.Create(ctx, "marie", "pw", domain.Role("superuser"))
	assert.ErrorAs(t, err, &verr)
}

func TestUserDelete_ProtectedAdmin(t *testing.T) {
	ctx := context.Background()
	users := UserService{Store: newTestStore(t)}

	admin, err := users.Create(ctx, domain.ProtectedAdminUsername, "pw", domain.RoleAdmin)
	require.NoError(t, err)
	other, err := users.Create(ctx, "marie", "pw", domain.RoleAdmin)
	require.NoError(t, err)

	assert.ErrorIs(t, users.Delete(ctx, admin.ID), ErrProtectedUser)
	assert.NoError(t, users.Delete(ctx, other.ID))

	list, err := users.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.ProtectedAdminUsername, list[0].Username)
}

func TestUserUpdatePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := UserService{Store: st}
	auth := AuthService{Store: st}

	u, err := users.Create(ctx, "marie", "old-pw", domain.RoleBiomedical)
	require.NoError(t, err)

	require.NoError(t, users.UpdatePassword(ctx, u.ID, "new-pw"))

	_, _, err = auth.Authenticate(ctx, "marie", "old-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Authenticate(ctx, "marie", "new-pw")
	assert.NoError(t, err)
}

func TestUserUpdateRole_UnknownUser(t *testing.T) {
	ctx := context.Background()
	users := UserService{Store: newTestStore(t)}

	err := users.UpdateRole(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK", domain.RoleAdmin)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
