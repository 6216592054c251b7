package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/erazemk/boxtrack/internal/model"
)

var ada = model.User{FirstName: "Ada", LastName: "Lovelace"}

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, ada, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.User() != ada {
		t.Errorf("expected %+v, got %+v", ada, claims.User())
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	a, _ := GenerateToken("s", ada, time.Hour)
	b, _ := GenerateToken("s", ada, time.Hour)

	ca, err := ValidateToken("s", a)
	if err != nil {
		t.Fatal(err)
	}
	cb, err := ValidateToken("s", b)
	if err != nil {
		t.Fatal(err)
	}
	if ca.ID == cb.ID {
		t.Error("expected distinct token IDs")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", ada, time.Hour)

	if _, err := ValidateToken("secret2", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
	// The unsigned name-pair cookie format is not accepted.
	if _, err := ValidateToken("secret", "{'first_name': 'Ada', 'last_name': 'Lovelace'}"); err == nil {
		t.Error("expected error for unsigned cookie value")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	claims := Claims{
		FirstName: "Ada",
		LastName:  "Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken("s", token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestTokenExpiry(t *testing.T) {
	secret := "test"
	token, _ := GenerateToken(secret, ada, 0)
	claims, _ := ValidateToken(secret, token)

	diff := time.Now().Add(DefaultTokenExpiry).Sub(claims.ExpiresAt.Time)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
