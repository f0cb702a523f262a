package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

func TestAuthenticate_Success(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := UserService{Store: st}
	auth := AuthService{Store: st}

	_, err := users.Create(ctx, "marie", "s3cret", domain.RoleBiomedical)
	require.NoError(t, err)

	session, token, err := auth.Authenticate(ctx, "marie", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "marie", session.Username)
	assert.Equal(t, domain.RoleBiomedical, session.Role)

	resolved, err := auth.SessionByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
	assert.Equal(t, session.Role, resolved.Role)
}

func TestAuthenticate_FailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := UserService{Store: st}
	auth := AuthService{Store: st}

	_, err := users.Create(ctx, "marie", "s3cret", domain.RoleBiomedical)
	require.NoError(t, err)

	// Unknown user and wrong password must be indistinguishable.
	_, _, errUnknown := auth.Authenticate(ctx, "nobody", "whatever")
	_, _, errWrongPw := auth.Authenticate(ctx, "marie", "wrong")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestLogout_RevokesImmediately(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := UserService{Store: st}
	auth := AuthService{Store: st}

	_, err := users.Create(ctx, "marie", "s3cret", domain.RoleBiomedical)
	require.NoError(t, err)

	session, token, err := auth.Authenticate(ctx, "marie", "s3cret")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, session))

	_, err = auth.SessionByToken(ctx, token)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Logging out again is a no-op, not an error.
	assert.NoError(t, auth.Logout(ctx, session))
}

func TestAuthenticate_SessionSnapshotSurvivesRoleChange(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := UserService{Store: st}
	auth := AuthService{Store: st}

	u, err := users.Create(ctx, "marie", "s3cret", domain.RoleBiomedical)
	require.NoError(t, err)

	_, token, err := auth.Authenticate(ctx, "marie", "s3cret")
	require.NoError(t, err)

	// The session carries the role captured at login.
	require.NoError(t, users.UpdateRole(ctx, u.ID, domain.RoleAdmin))

	session, err := auth.SessionByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBiomedical, session.Role)
}
