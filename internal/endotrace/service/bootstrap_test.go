package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

func TestEnsureAdmin_SeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, EnsureAdmin(ctx, st, "admin", "changeme"))

	users := UserService{Store: st}
	list, err := users.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "admin", list[0].Username)
	assert.Equal(t, domain.RoleAdmin, list[0].Role)

	auth := AuthService{Store: st}
	_, _, err = auth.Authenticate(ctx, "admin", "changeme")
	assert.NoError(t, err)
}

func TestEnsureAdmin_NoopWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := UserService{Store: st}
	_, err := users.Create(ctx, "marie", "pw", domain.RoleBiomedical)
	require.NoError(t, err)

	require.NoError(t, EnsureAdmin(ctx, st, "admin", "changeme"))

	list, err := users.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
