package jwt

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when the token cannot be parsed as a JWT at all.
var ErrMalformed = errors.New("malformed token")

// Claims is the subset of gvero token claims the client cares about.
// Field values come straight from the unverified payload.
type Claims struct {
	UserID         int64
	Email          string
	Role           string
	OrganizationID int64
	ExpiresAt      time.Time
}

// Inspect decodes the token payload without signature verification and
// extracts the gvero claim set. Missing claims are left at their zero values;
// only a structurally unparsable token is an error.
func Inspect(token string) (*Claims, error) {
	parser := gojwt.NewParser()

	mapClaims := gojwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return nil, ErrMalformed
	}

	claims := &Claims{}
	if id, ok := mapClaims["id"].(float64); ok {
		claims.UserID = int64(id)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["tipo"].(string); ok {
		claims.Role = role
	}
	if org, ok := mapClaims["empresa"].(float64); ok {
		claims.OrganizationID = int64(org)
	}

	expiry, err := mapClaims.GetExpirationTime()
	if err == nil && expiry != nil {
		claims.ExpiresAt = expiry.Time
	}
	return claims, nil
}

// Expired reports whether the token carries an expiry claim in the past.
// Opaque (non-JWT) tokens and tokens without an exp claim report false:
// absence of local evidence is not an invalid session.
func Expired(token string, now time.Time) bool {
	claims, err := Inspect(token)
	if err != nil {
		return false
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
