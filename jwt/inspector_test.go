package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return signed
}

func TestInspectExtractsBackendClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, gojwt.MapClaims{
		"id":      float64(42),
		"email":   "ana@gvero.com",
		"tipo":    "gerente",
		"empresa": float64(7),
		"exp":     expiry.Unix(),
	})

	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "ana@gvero.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != "gerente" {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.OrganizationID != 7 {
		t.Fatalf("unexpected organization %d", claims.OrganizationID)
	}
	if !claims.ExpiresAt.Equal(expiry) {
		t.Fatalf("expected expiry %v, got %v", expiry, claims.ExpiresAt)
	}
}

func TestInspectRejectsNonJWT(t *testing.T) {
	if _, err := Inspect("opaque-session-token"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	past := signedToken(t, gojwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	if !Expired(past, now) {
		t.Fatal("token with past exp must report expired")
	}

	future := signedToken(t, gojwt.MapClaims{"exp": now.Add(time.Minute).Unix()})
	if Expired(future, now) {
		t.Fatal("token with future exp must not report expired")
	}

	noExp := signedToken(t, gojwt.MapClaims{"id": float64(1)})
	if Expired(noExp, now) {
		t.Fatal("token without exp must not report expired")
	}

	if Expired("opaque-session-token", now) {
		t.Fatal("opaque token must not report expired")
	}
}
