package handler

import (
	"errors"
	"testing"
)

func TestValidator_FieldNamesFromJSONTags(t *testing.T) {
	v := NewValidator()

	req := createUserRequest{Name: "Ada", Email: "not-an-email"}
	err := v.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["email"]; !ok {
		t.Errorf("expected json tag field name, got %v", ve.Fields)
	}
	if ve.Fields["email"] != "email must be a valid email" {
		t.Errorf("unexpected message: %q", ve.Fields["email"])
	}
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["name"] != "name is required" {
		t.Errorf("unexpected name message: %q", ve.Fields["name"])
	}
	if ve.Fields["email"] != "email is required" {
		t.Errorf("unexpected email message: %q", ve.Fields["email"])
	}
}

func TestValidator_FieldNamesFromQueryTags(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&listPostsRequest{UserID: "not-a-uuid"})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["user_id"]; !ok {
		t.Errorf("expected query tag field name, got %v", ve.Fields)
	}

	err = v.Validate(&listUsersRequest{Role: "WIZARD"})
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["role"]; !ok {
		t.Errorf("expected query tag field name, got %v", ve.Fields)
	}
}

func TestValidator_OneOfRole(t *testing.T) {
	v := NewValidator()

	req := createUserRequest{Name: "Ada", Email: "ada@example.com", Role: "ROOT"}
	err := v.Validate(&req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["role"]; !ok {
		t.Errorf("expected role failure, got %v", ve.Fields)
	}
}

func TestValidator_ValidPayload(t *testing.T) {
	v := NewValidator()

	req := createUserRequest{Name: "Ada", Email: "ada@example.com", Role: "ADMIN"}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError("title", "title is required")
	if ve.Error() != "title: title is required" {
		t.Errorf("unexpected error string: %q", ve.Error())
	}
}
