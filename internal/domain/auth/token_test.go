package auth

import (
	"testing"
	"time"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken("secret", "user-1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected admin role, got %s", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-1", "employee", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected parse with wrong secret to fail")
	}
}

func TestParseExpiredToken(t *testing.T) {
	token, err := IssueToken("secret", "user-1", "employee", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
