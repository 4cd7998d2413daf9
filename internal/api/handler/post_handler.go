package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/content-system/internal/api/metrics"
	"github.com/inkwell/content-system/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /v1/posts.
//
// @Summary      Create a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, toPostResponse(post))
}

// List handles GET /v1/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page     query     int     false  "1-based page number"
// @Param        limit    query     int     false  "Page size (max 100)"
// @Param        user_id  query     string  false  "Filter by author"
// @Success      200      {object}  listPostsResponse
// @Router       /v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	var req listPostsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{
		UserID: req.UserID,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, toListPostsResponse(result))
}

// Get handles GET /v1/posts/:uuid.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        uuid  path      string  true  "Post id"
// @Success      200   {object}  postDetailResponse
// @Failure      404   {object}  map[string]any
// @Router       /v1/posts/{uuid} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toPostDetailResponse(post))
}
