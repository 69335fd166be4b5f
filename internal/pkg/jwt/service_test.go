package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue("u@x.com")
	if err != nil {
		t.Fatalf("unexpected issue err: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("unexpected verify err: %v", err)
	}
	if claims.Email != "u@x.com" {
		t.Fatalf("expected email u@x.com, got %q", claims.Email)
	}
}

func TestHMACService_VerifyBeforeAndAfterExpiry(t *testing.T) {
	base := time.Now()
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return base }

	tok, err := svc.Issue("u@x.com")
	if err != nil {
		t.Fatalf("unexpected issue err: %v", err)
	}

	svc.now = func() time.Time { return base.Add(59 * time.Minute) }
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	svc.now = func() time.Time { return base.Add(61 * time.Minute) }
	if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_VerifyRejectsTampered(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.Issue("u@x.com")
	if err != nil {
		t.Fatalf("unexpected issue err: %v", err)
	}

	if _, err := svc.Verify(tok + "x"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestHMACService_VerifyRejectsForeignSecret(t *testing.T) {
	issuer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	tok, err := issuer.Issue("u@x.com")
	if err != nil {
		t.Fatalf("unexpected issue err: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestHMACService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
