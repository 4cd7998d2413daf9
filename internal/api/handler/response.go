package handler

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Every endpoint answers with the same envelope: {"success": bool} plus one
// of data, message, or error. Error envelopes are rendered centrally by the
// HTTP error handler; handlers only produce the success variants.

type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, dataEnvelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, messageEnvelope{Success: true, Message: message})
}

// paginationResponse is shared by every list endpoint.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// timestamps are rendered in RFC 3339 UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
