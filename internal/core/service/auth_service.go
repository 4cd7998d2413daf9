package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/content-system/internal/core/domain"
	"github.com/inkwell/content-system/internal/core/ports"
)

// AuthService exchanges the shared admin API key for short-lived JWTs.
// The key itself is never stored; the config carries only its bcrypt hash.
type AuthService struct {
	apiKeyHash string
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(apiKeyHash, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{apiKeyHash: apiKeyHash, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) IssueToken(_ context.Context, apiKey, role string) (*ports.TokenResult, error) {
	// No hash configured means token issuance is disabled.
	if s.apiKeyHash == "" || apiKey == "" {
		return nil, domain.ErrInvalidAPIKey
	}
	if bcrypt.CompareHashAndPassword([]byte(s.apiKeyHash), []byte(apiKey)) != nil {
		return nil, domain.ErrInvalidAPIKey
	}
	if !domain.Role(role).Valid() {
		return nil, domain.ErrInvalidRole
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"role": role,
		"exp":  expiresAt.Unix(),
		"iss":  "content-system",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{Token: token, Role: role, ExpiresAt: expiresAt}, nil
}
