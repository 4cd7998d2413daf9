package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/inkwell/content-system/internal/core/domain"
	"github.com/inkwell/content-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub post service
// ---------------------------------------------------------------------------

type stubPostService struct {
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	listFn   func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error)
}

func (s *stubPostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}
func (s *stubPostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}
func (s *stubPostService) ListPosts(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	return s.listFn(ctx, input)
}

const testAuthorID = "5a4f66a1-0000-4000-8000-000000000001"

func testPost() *domain.Post {
	return &domain.Post{
		ID:        "6b5f77b2-0000-4000-8000-000000000002",
		Title:     "Hello",
		Body:      "World",
		UserID:    testAuthorID,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.Title != "Hello" || input.Body != "World" || input.UserID != testAuthorID {
				t.Fatalf("unexpected input: %+v", input)
			}
			return testPost(), nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/posts",
		`{"title":"Hello","body":"World","user_id":"`+testAuthorID+`"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data := resp["data"].(map[string]any)
	if data["title"] != "Hello" || data["user_id"] != testAuthorID {
		t.Errorf("unexpected data payload: %+v", data)
	}
}

func TestPostHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/posts", `{"title":"","body":"","user_id":"nope"}`)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "body", "user_id"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected message for field %q, got %v", field, ve.Fields)
		}
	}
}

func TestPostHandler_Create_UnknownAuthor(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/posts",
		`{"title":"t","body":"b","user_id":"`+testAuthorID+`"}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound passthrough, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Get tests
// ---------------------------------------------------------------------------

func TestPostHandler_Get_WithAuthor(t *testing.T) {
	post := testPost()
	post.User = &domain.User{ID: testAuthorID, Name: "Ada", Email: "ada@example.com"}

	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) { return post, nil },
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/posts/"+post.ID, "")
	c.SetParamNames("uuid")
	c.SetParamValues(post.ID)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data := resp["data"].(map[string]any)
	author, ok := data["author"].(map[string]any)
	if !ok {
		t.Fatalf("expected author object, got %v", data["author"])
	}
	if author["name"] != "Ada" {
		t.Errorf("unexpected author: %+v", author)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/v1/posts/unknown", "")
	c.SetParamNames("uuid")
	c.SetParamValues("unknown")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound passthrough, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestPostHandler_List_FilterForwarded(t *testing.T) {
	stub := &stubPostService{
		listFn: func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
			if input.UserID != testAuthorID {
				t.Fatalf("expected user filter, got %+v", input)
			}
			return &ports.ListPostsResult{
				Items:      []*domain.Post{testPost()},
				Total:      1,
				Page:       1,
				Limit:      20,
				TotalPages: 1,
			}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/posts?user_id="+testAuthorID, "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_List_InvalidUserFilter(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newTestContext(http.MethodGet, "/v1/posts?user_id=42", "")

	err := h.List(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
