package ports

import (
	"context"

	"github.com/inkwell/content-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Name  string
	Email string
	Role  string // optional; must be a defined role when non-empty
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// ListUsersInput carries all parameters for the user list endpoint.
type ListUsersInput struct {
	Role  string
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines use-case operations for users.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// GetUser returns the user with posts loaded. Cached reads may be served
	// without touching the database.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
