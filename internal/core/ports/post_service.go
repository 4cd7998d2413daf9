package ports

import (
	"context"

	"github.com/inkwell/content-system/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
type CreatePostInput struct {
	Title  string
	Body   string
	UserID string // author; must reference an existing user
}

// ListPostsInput carries all parameters for the post list endpoint.
type ListPostsInput struct {
	UserID string
	Page   int
	Limit  int
}

// ListPostsResult is returned by ListPosts.
type ListPostsResult struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PostService defines use-case operations for posts.
type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
}
