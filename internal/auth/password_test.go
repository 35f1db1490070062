package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plain password")
	}

	if err := ComparePassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "wrong-pass"); err == nil {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
