package fitbit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// VerifySubscriberSignature reports whether signature matches the
// X-Fitbit-Signature header for a subscription notification body. Fitbit
// signs the raw body with HMAC-SHA1 keyed by the client secret plus a
// trailing "&", base64-encoded. The comparison is constant-time.
func (c *Client) VerifySubscriberSignature(body []byte, signature string) bool {
	mac := hmac.New(sha1.New, []byte(c.clientSecret+"&"))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
