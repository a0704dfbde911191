package jwt

import (
	"testing"
	"time"

	"health-admin-backoffice/config"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	actorID := uuid.New()

	signed := signToken(t, "test-secret", Claims{
		ActorID: actorID,
		Email:   "admin@example.com",
		TokenID: "tok-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	})

	claims, err := svc.ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.ActorID != actorID {
		t.Errorf("actor id = %s, want %s", claims.ActorID, actorID)
	}
	if claims.TokenID != "tok-1" {
		t.Errorf("token id = %q, want tok-1", claims.TokenID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})

	signed := signToken(t, "other-secret", Claims{
		ActorID: uuid.New(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := svc.ValidateToken(signed); err == nil {
		t.Error("token signed with wrong secret accepted")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})

	signed := signToken(t, "test-secret", Claims{
		ActorID: uuid.New(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	if _, err := svc.ValidateToken(signed); err == nil {
		t.Error("expired token accepted")
	}
}
