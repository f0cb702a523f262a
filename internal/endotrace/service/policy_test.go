package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

func sessionWithRole(role domain.Role) *domain.Session {
	return &domain.Session{ID: "s", Username: "someone", Role: role}
}

func TestAuthorize_NoSession(t *testing.T) {
	err := Authorize(nil, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_RoleGates(t *testing.T) {
	cases := []struct {
		name    string
		allowed []domain.Role
		role    domain.Role
		ok      bool
	}{
		{"admin on user management", []domain.Role{domain.RoleAdmin}, domain.RoleAdmin, true},
		{"biomedical on user management", []domain.Role{domain.RoleAdmin}, domain.RoleBiomedical, false},
		{"sterilisation on user management", []domain.Role{domain.RoleAdmin}, domain.RoleSterilisation, false},

		{"biomedical on inventory write", []domain.Role{domain.RoleBiomedical}, domain.RoleBiomedical, true},
		{"admin on inventory write", []domain.Role{domain.RoleBiomedical}, domain.RoleAdmin, false},
		{"sterilisation on inventory write", []domain.Role{domain.RoleBiomedical}, domain.RoleSterilisation, false},

		{"sterilisation on report entry", []domain.Role{domain.RoleSterilisation, domain.RoleBiomedical}, domain.RoleSterilisation, true},
		{"biomedical on report entry", []domain.Role{domain.RoleSterilisation, domain.RoleBiomedical}, domain.RoleBiomedical, true},
		{"admin on report entry", []domain.Role{domain.RoleSterilisation, domain.RoleBiomedical}, domain.RoleAdmin, false},

		{"any role on dashboard", domain.Roles, domain.RoleSterilisation, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(sessionWithRole(tc.role), tc.allowed...)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestAuthorize_ForbiddenCarriesAllowedRoles(t *testing.T) {
	err := Authorize(sessionWithRole(domain.RoleSterilisation), domain.RoleAdmin, domain.RoleBiomedical)
	require.Error(t, err)

	var fe *ForbiddenError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleBiomedical}, fe.Allowed)
}

func TestCanModifyReport(t *testing.T) {
	assert.True(t, CanModifyReport(domain.RoleAdmin, "alice", "bob"))
	assert.True(t, CanModifyReport(domain.RoleBiomedical, "alice", "bob"))
	assert.True(t, CanModifyReport(domain.RoleSterilisation, "alice", "alice"))
	assert.False(t, CanModifyReport(domain.RoleSterilisation, "alice", "bob"))
	assert.False(t, CanModifyReport(domain.Role("unknown"), "alice", "alice"))
}
