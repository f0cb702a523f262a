package domain

import "time"

// ProtectedAdminUsername can never be deleted through user management, so the
// system always keeps at least one administrable account.
const ProtectedAdminUsername = "admin"

type User struct {
	ID           string
	Username     string // unique, case-sensitive
	PasswordHash string // argon2id PHC string, never the clear password
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
