package domain

import (
	"errors"
	"time"
)

// Role is the access level assigned to a user. A user may carry no role at
// all, in which case Role is the empty string.
type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleSuperuser Role = "SUPERUSER"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidAPIKey = errors.New("invalid api key")

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperuser:
		return true
	}
	return false
}

// Roles lists every defined role, in ascending privilege order.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleSuperuser}
}

// User is an account managed through the admin API.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role // empty when unset
	CreatedAt time.Time
	UpdatedAt time.Time
	Posts     []Post
}
