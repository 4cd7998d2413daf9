package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/content-system/internal/core/ports"
)

// AuthHandler exchanges the admin API key for role-scoped JWTs.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
	Role   string `json:"role"    validate:"required,oneof=USER ADMIN SUPERUSER"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// IssueToken handles POST /auth/token.
//
// @Summary      Exchange the admin API key for a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "API key and desired role"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/token [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.IssueToken(c.Request().Context(), req.APIKey, req.Role)
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, tokenResponse{
		Token:     result.Token,
		Role:      result.Role,
		ExpiresAt: formatTime(result.ExpiresAt),
	})
}
