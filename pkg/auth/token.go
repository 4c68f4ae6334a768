package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim from a backend-issued bearer token without
// verifying the signature. Signature enforcement is the backend's job; the
// client only needs to know when a stored token has gone stale so it can
// drop the session instead of issuing doomed requests.
// Returns the zero time when the token carries no exp claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, err
	}
	return exp.Time, nil
}

// TokenExpired reports whether the token's exp claim is in the past.
// Tokens that fail to parse are treated as expired; the backend will reject
// them anyway, so the session is worthless. Tokens without an exp claim
// never expire locally and are left for the backend to judge.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	if exp.IsZero() {
		return false
	}
	return exp.Before(now)
}
