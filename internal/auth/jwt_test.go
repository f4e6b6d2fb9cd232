package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleStaff)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != RoleStaff {
		t.Fatalf("Expected role %s, got %s", RoleStaff, extractedRole)
	}
}

func TestGenerateTokenRejectsEmptyUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "test@example.com", RoleStaff); err == nil {
		t.Fatalf("expected error for empty userID")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	token, err := GenerateToken("test-user-id", "test@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "a-different-secret")
	if _, _, _, err := ValidateToken(token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
