package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/content-system/internal/core/domain"
)

const testSecret = "test-secret"

func hashKey(t *testing.T, key string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}
	return string(hash)
}

func TestAuthService_IssueToken_Success(t *testing.T) {
	svc := NewAuthService(hashKey(t, "letmein"), testSecret, time.Hour)

	result, err := svc.IssueToken(context.Background(), "letmein", "ADMIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", result.Role)
	}
	if !result.ExpiresAt.After(time.Now()) {
		t.Error("token must expire in the future")
	}

	// The minted token must parse and carry the requested role.
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("minted token does not verify: %v", err)
	}
	if claims["role"] != "ADMIN" {
		t.Errorf("expected role claim ADMIN, got %v", claims["role"])
	}
}

func TestAuthService_IssueToken_WrongKey(t *testing.T) {
	svc := NewAuthService(hashKey(t, "letmein"), testSecret, time.Hour)

	_, err := svc.IssueToken(context.Background(), "wrong", "ADMIN")
	if !errors.Is(err, domain.ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}

func TestAuthService_IssueToken_EmptyKey(t *testing.T) {
	svc := NewAuthService(hashKey(t, "letmein"), testSecret, time.Hour)

	_, err := svc.IssueToken(context.Background(), "", "ADMIN")
	if !errors.Is(err, domain.ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}

func TestAuthService_IssueToken_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService("", testSecret, time.Hour)

	_, err := svc.IssueToken(context.Background(), "anything", "ADMIN")
	if !errors.Is(err, domain.ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey when no hash configured, got %v", err)
	}
}

func TestAuthService_IssueToken_InvalidRole(t *testing.T) {
	svc := NewAuthService(hashKey(t, "letmein"), testSecret, time.Hour)

	_, err := svc.IssueToken(context.Background(), "letmein", "guest")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(hashKey(t, "k"), testSecret, 0)

	result, err := svc.IssueToken(context.Background(), "k", "USER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Until(result.ExpiresAt) < 23*time.Hour {
		t.Errorf("expected ~24h default TTL, expires at %v", result.ExpiresAt)
	}
}
