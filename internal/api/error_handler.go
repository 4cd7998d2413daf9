package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/content-system/internal/api/handler"
	"github.com/inkwell/content-system/internal/core/domain"
)

// errorEnvelope is the canonical error body: {"success": false, "error": ...}.
// Error is a plain string for most failures and a field→message object for
// validation failures.
type errorEnvelope struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 400s with field-keyed messages.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Success: false, Error: body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Request validation: field-keyed messages, always 400.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Fields
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, map[string]string{"email": "email already in use"}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, map[string]string{"role": "role must be one of: USER ADMIN SUPERUSER"}
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return http.StatusUnauthorized, "invalid api key"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
