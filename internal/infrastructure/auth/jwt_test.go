package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Sign("acc-1", "anita@example.com", "worker")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.AccountID != "acc-1" || claims.Email != "anita@example.com" || claims.Role != "worker" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Sign("acc-1", "anita@example.com", "worker")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken for an expired token", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := signer.Sign("acc-1", "anita@example.com", "worker")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken under a different secret", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: err = %v, want ErrInvalidToken", token, err)
		}
	}
}
