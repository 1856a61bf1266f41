package auth

import (
	"testing"
	"time"

	"jobboard/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := Sign(secret, 42, "viewer", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	id, role, err := Parse(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if id != 42 || role != "viewer" {
		t.Fatalf("claims mismatch: id=%d role=%q", id, role)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign([]byte("secret-a"), 1, "viewer", time.Hour)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, _, err := Parse([]byte("secret-b"), token); !domain.IsUnauthorized(err) {
		t.Fatalf("wrong secret should be unauthorized, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   int64(1),
		"role": "viewer",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, _, err := Parse(secret, token); !domain.IsUnauthorized(err) {
		t.Fatalf("expired token should be unauthorized, got %v", err)
	}
}

func TestParseRejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":   int64(1),
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, _, err := Parse([]byte("test-secret"), token); !domain.IsUnauthorized(err) {
		t.Fatalf("alg=none must be rejected, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, _, err := Parse([]byte("test-secret"), "not-a-token"); !domain.IsUnauthorized(err) {
		t.Fatalf("garbage input should be unauthorized, got %v", err)
	}
}
