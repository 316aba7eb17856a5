package domain

import "errors"

const (
	RoleAdmin  = "Admin"
	RoleLawyer = "Lawyer"
	RoleClerk  = "Clerk"
)

// Roles lists every role a user can be assigned at signup.
var Roles = []string{RoleAdmin, RoleLawyer, RoleClerk}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User models a registered actor. The password hash never leaves the
// process in API responses.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Claims is the identity payload embedded in a signed session token.
// It is reconstructed from the token on every authenticated request
// and never persisted server-side.
type Claims struct {
	UserID int64
	Role   string
}

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidRole = errors.New("invalid role")
