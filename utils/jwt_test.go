package utils

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testSecret, 42, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(testSecret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestParseJWTRejects(t *testing.T) {
	expired, err := GenerateJWT(testSecret, 1, "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	wrongKey, err := GenerateJWT([]byte("other-secret"), 1, "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", wrongKey},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseJWT(testSecret, tc.token); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}
