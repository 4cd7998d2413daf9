package ports

import (
	"context"

	"github.com/inkwell/content-system/internal/core/domain"
)

// ListUsersFilter carries all query parameters for listing users.
// Page is 1-based; Limit is already normalised by the service layer.
type ListUsersFilter struct {
	Role  string // optional: filter by exact role
	Page  int
	Limit int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByID retrieves a user by id with their posts loaded.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Exists reports whether a user with the given id is persisted.
	Exists(ctx context.Context, id string) (bool, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// Update persists the mutable columns (name, email, role, updated_at).
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
