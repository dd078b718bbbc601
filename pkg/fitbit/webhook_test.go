package fitbit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifySubscriberSignature(t *testing.T) {
	t.Parallel()

	client := NewClient("abc", "xyz")
	body := []byte(`[{"collectionType":"activities","date":"2026-08-23","ownerId":"ABC123"}]`)

	// The signing key is the client secret with a trailing ampersand.
	mac := hmac.New(sha1.New, []byte("xyz&"))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	t.Run("valid signature", func(t *testing.T) {
		require.True(t, client.VerifySubscriberSignature(body, signature))
	})

	t.Run("tampered body", func(t *testing.T) {
		tampered := append([]byte(nil), body...)
		tampered[0] = '{'
		require.False(t, client.VerifySubscriberSignature(tampered, signature))
	})

	t.Run("wrong signature", func(t *testing.T) {
		require.False(t, client.VerifySubscriberSignature(body, "bm90LXRoZS1zaWduYXR1cmU="))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewClient("abc", "different-secret")
		require.False(t, other.VerifySubscriberSignature(body, signature))
	})
}
