package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/content-system/internal/api/metrics"
	"github.com/inkwell/content-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), toCreateUserInput(req))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(roleLabel(req.Role)).Inc()
	return respondData(c, http.StatusCreated, toUserResponse(user))
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page   query     int     false  "1-based page number"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Param        role   query     string  false  "Filter by role"
// @Success      200    {object}  listUsersResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	var req listUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Role:  req.Role,
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, toListUsersResponse(result))
}

// Get handles GET /v1/users/:uuid.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        uuid  path      string  true  "User id"
// @Success      200   {object}  userDetailResponse
// @Failure      404   {object}  map[string]any
// @Router       /v1/users/{uuid} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toUserDetailResponse(user))
}

// Update handles PUT /v1/users/:uuid.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        uuid  path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /v1/users/{uuid} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("uuid"), toUpdateUserInput(req))
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /v1/users/:uuid.
//
// @Summary      Delete a user and their posts
// @Tags         users
// @Produce      json
// @Param        uuid  path      string  true  "User id"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /v1/users/{uuid} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return respondMessage(c, http.StatusOK, "user deleted")
}

func roleLabel(role string) string {
	if role == "" {
		return "unset"
	}
	return role
}
