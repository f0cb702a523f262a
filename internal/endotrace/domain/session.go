package domain

import "time"

// Session is the identity established by a successful login: the username and
// role snapshot taken at authentication time. It lives server-side until
// logout deletes it; no expiry is modeled.
type Session struct {
	ID               string
	TokenFingerprint string // SHA-256 of the cookie token, never the token itself
	UserID           string
	Username         string
	Role             Role
	CreatedAt        time.Time
}
