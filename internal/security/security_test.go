package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Sunrise42")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "Sunrise42" {
		t.Fatal("password must not be stored in the clear")
	}

	if !CheckPassword(hash, "Sunrise42") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "WrongPass1") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	tokenString, err := BuildToken(secret, 7, 12, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	claims, err := ParseToken(secret, tokenString)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 7 || claims.CustomerID != 12 {
		t.Errorf("claims = (%d, %d), want (7, 12)", claims.UserID, claims.CustomerID)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tokenString, err := BuildToken([]byte("secret-a"), 7, 12, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}

	if _, err := ParseToken([]byte("secret-b"), tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	claims := AuthClaims{
		UserID:     7,
		CustomerID: 12,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ParseToken(secret, tokenString); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken([]byte("test-secret"), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: err = %v, want ErrInvalidToken", err)
	}
}
