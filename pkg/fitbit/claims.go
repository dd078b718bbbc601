package fitbit

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims are the claims Fitbit embeds in its JWT access tokens.
// Subject carries the resource owner's Fitbit user ID.
type AccessTokenClaims struct {
	jwt.RegisteredClaims

	// Scopes is Fitbit's space-delimited scope list. Each entry is the scope
	// name prefixed with its access level, e.g. "rpro rsle" for read access
	// to profile and sleep.
	Scopes string `json:"scopes,omitempty"`
}

// DecodeAccessTokenClaims parses the claims of an access token without
// verifying its signature. Fitbit does not publish its signing keys, so the
// contents are useful as a hint (expiry, granted scopes, owning user) but
// must never drive an authentication decision.
func DecodeAccessTokenClaims(token string) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	return &claims, nil
}
