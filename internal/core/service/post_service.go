package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/content-system/internal/core/domain"
	"github.com/inkwell/content-system/internal/core/ports"
)

// PostService implements post operations. Creating a post requires the
// author to exist, so the service depends on both repositories. It also
// holds the user cache: the cached user detail embeds the user's posts,
// so a new post must drop the author's entry.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	cache  UserCache
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, cache UserCache, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, cache: cache, logger: logger}
}

func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if _, err := uuid.Parse(input.UserID); err != nil {
		return nil, domain.ErrUserNotFound
	}

	exists, err := s.users.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Body:      input.Body,
		UserID:    input.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	// The cached user detail embeds posts; drop the author's entry so the
	// next read sees the new post.
	if err := s.cache.Invalidate(ctx, post.UserID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", post.UserID).Msg("cache invalidation failed")
	}

	s.logger.Info().Str("post_id", post.ID).Str("user_id", post.UserID).Msg("post created")
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPostNotFound
	}
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	posts, total, err := s.posts.List(ctx, ports.ListPostsFilter{
		UserID: input.UserID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListPostsResult{
		Items:      posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
