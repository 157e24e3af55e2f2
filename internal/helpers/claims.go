package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the session cookie: the user id in the
// registered Subject plus the role at issue time. The role is re-checked
// against the stored user on every request, so a stale claim cannot widen
// access.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (sc *SessionClaims) UserID() string {
	return sc.Subject
}

func (sc *SessionClaims) IsAdmin() bool {
	return sc.Role == "admin"
}

func (sc *SessionClaims) HasRole(role string) bool {
	return sc.Role == role
}
