package fitbit

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccessTokenClaims(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		expiry := time.Now().Add(8 * time.Hour).Truncate(time.Second)
		claims := AccessTokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "Fitbit",
				Subject:   "ABC123",
				Audience:  jwt.ClaimStrings{"abc"},
				ExpiresAt: jwt.NewNumericDate(expiry),
			},
			Scopes: "rpro rsle",
		}

		// The decoder never verifies signatures, so any signing key works
		// for building a structurally valid test token.
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
		require.NoError(t, err)

		decoded, err := DecodeAccessTokenClaims(token)
		require.NoError(t, err)
		require.Equal(t, "ABC123", decoded.Subject)
		require.Equal(t, "Fitbit", decoded.Issuer)
		require.Equal(t, "rpro rsle", decoded.Scopes)
		require.Equal(t, []string{"rpro", "rsle"}, ParseScope(decoded.Scopes))
		require.True(t, expiry.Equal(decoded.ExpiresAt.Time))
	})

	t.Run("not a JWT", func(t *testing.T) {
		_, err := DecodeAccessTokenClaims("opaque-token-value")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse access token")
	})
}
