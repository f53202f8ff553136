package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("s3cret!", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

// An empty stored hash must never verify; the dummy comparison only
// exists to keep timing constant.
func TestCheckPasswordHashEmptyHash(t *testing.T) {
	if CheckPasswordHash("anything", "") {
		t.Error("empty hash accepted a password")
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateOTP(6)
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit %q in OTP %q", r, code)
			}
		}
	}
}
