package ports

import (
	"context"

	"github.com/inkwell/content-system/internal/core/domain"
)

// ListPostsFilter carries all query parameters for listing posts.
type ListPostsFilter struct {
	UserID string // optional: scope to a single author
	Page   int
	Limit  int
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// FindByID retrieves a post by id with its author loaded.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of posts matching filter and the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
}
