package service

import (
	"errors"
	"fmt"

	"github.com/clinsuite/endotrace/internal/endotrace/domain"
)

var (
	// ErrUnauthenticated means no session identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is the target for errors.Is on any ForbiddenError.
	ErrForbidden = errors.New("forbidden")
)

// ForbiddenError reports a role outside the allowed set for an operation. It
// carries the allowed roles so the presentation layer can enumerate them.
type ForbiddenError struct {
	Allowed []domain.Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: allowed roles %v", e.Allowed)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// Authorize is the explicit guard called at the top of every gated operation:
// deny when there is no session, deny when the session role is outside the
// allowed set, permit otherwise.
func Authorize(session *domain.Session, allowed ...domain.Role) error {
	if session == nil {
		return ErrUnauthenticated
	}
	for _, role := range allowed {
		if session.Role == role {
			return nil
		}
	}
	return &ForbiddenError{Allowed: allowed}
}

// CanModifyReport decides sterilization-report mutation rights: admin and
// biomedical may modify any report; sterilisation agents only their own.
func CanModifyReport(role domain.Role, ownerUsername, actingUsername string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleBiomedical:
		return true
	case domain.RoleSterilisation:
		return ownerUsername == actingUsername
	}
	return false
}
