package main

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestNewAccessKey_Generated(t *testing.T) {
	key, hash, err := newAccessKey("  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(key); err != nil {
		t.Errorf("generated key %q is not a UUID", key)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
		t.Errorf("hash does not match key: %v", err)
	}
}

func TestNewAccessKey_Provided(t *testing.T) {
	key, hash, err := newAccessKey("my-secret\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "my-secret" {
		t.Errorf("key = %q, want trimmed input", key)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte("other")) == nil {
		t.Error("hash matched the wrong key")
	}
}
