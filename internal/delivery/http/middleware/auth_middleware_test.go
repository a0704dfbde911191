package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-admin-backoffice/config"
	"health-admin-backoffice/pkg/jwt"

	"github.com/google/uuid"
)

// The denylist lookup needs a live redis connection, so these tests only
// cover the header and token validation paths that reject before reaching it.

func authTestMiddleware() *AuthMiddleware {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret"})
	return NewAuthMiddleware(jwtService, nil)
}

func nextNotCalled(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := authTestMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/api/health-authorities", nil)
	rec := httptest.NewRecorder()
	m.Authenticate(nextNotCalled(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := authTestMiddleware()

	for _, header := range []string{"Bearer", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/health-authorities", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		m.Authenticate(nextNotCalled(t)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := authTestMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/api/health-authorities", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	m.Authenticate(nextNotCalled(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestActorContextAccessors(t *testing.T) {
	actorID := uuid.New()
	ctx := context.WithValue(context.Background(), ActorIDKey, actorID)
	ctx = context.WithValue(ctx, ActorEmailKey, "admin@example.com")
	ctx = context.WithValue(ctx, TokenIDKey, "tok-1")

	if got, ok := GetActorIDFromContext(ctx); !ok || got != actorID {
		t.Errorf("GetActorIDFromContext = %v, %v", got, ok)
	}
	if got, ok := GetActorEmailFromContext(ctx); !ok || got != "admin@example.com" {
		t.Errorf("GetActorEmailFromContext = %v, %v", got, ok)
	}
	if got, ok := GetTokenIDFromContext(ctx); !ok || got != "tok-1" {
		t.Errorf("GetTokenIDFromContext = %v, %v", got, ok)
	}

	if _, ok := GetActorIDFromContext(context.Background()); ok {
		t.Error("empty context should not carry an actor ID")
	}
}
