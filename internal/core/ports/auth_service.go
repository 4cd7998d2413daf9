package ports

import (
	"context"
	"time"
)

// TokenResult is returned when an API key is exchanged for a JWT.
type TokenResult struct {
	Token     string
	Role      string
	ExpiresAt time.Time
}

// AuthService exchanges the shared admin API key for role-scoped tokens.
type AuthService interface {
	IssueToken(ctx context.Context, apiKey, role string) (*TokenResult, error)
}
