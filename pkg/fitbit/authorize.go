package fitbit

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// LoginURLOptions carries the optional parameters for BuildLoginURL.
// A nil options value applies every default.
type LoginURLOptions struct {
	// ResponseType overrides the OAuth2 response type. Defaults to "code".
	ResponseType string

	// Prompt controls Fitbit's consent behaviour ("none", "consent", "login"
	// or "login consent"). Defaults to "none".
	Prompt string

	// ExpiresIn requests an access token lifetime in seconds. Omitted from
	// the URL when zero.
	ExpiresIn int

	// State is an opaque value echoed back on the callback, recommended for
	// CSRF protection (see NewState). Omitted from the URL when empty.
	State string

	// PKCE attaches a code challenge pair to the URL. The matching verifier
	// must then be supplied to ExchangeAuthorizationCode.
	PKCE *PKCEChallenge
}

// BuildLoginURL constructs the authorization URL the user's browser is
// redirected to for consent. This is pure string construction, no network
// call is made.
//
// Scopes are joined with a single space in input order. They are not
// validated against the known scope set; invalid values pass through
// verbatim and are rejected by the authorization server.
func (c *Client) BuildLoginURL(redirectURI string, scopes []string, opts *LoginURLOptions) string {
	if opts == nil {
		opts = &LoginURLOptions{}
	}

	responseType := opts.ResponseType
	if responseType == "" {
		responseType = "code"
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = "none"
	}

	params := url.Values{}
	params.Set("response_type", responseType)
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("scope", strings.Join(scopes, " "))
	params.Set("prompt", prompt)

	if opts.ExpiresIn > 0 {
		params.Set("expires_in", strconv.Itoa(opts.ExpiresIn))
	}

	if opts.State != "" {
		params.Set("state", opts.State)
	}

	if opts.PKCE != nil {
		params.Set("code_challenge", opts.PKCE.Challenge)
		params.Set("code_challenge_method", opts.PKCE.Method)
	}

	// Fitbit documents %20 rather than + for the spaces inside scope. Any
	// literal + in a value is already escaped as %2B at this point.
	query := strings.ReplaceAll(params.Encode(), "+", "%20")

	return fmt.Sprintf("%s?%s", c.LoginURL, query)
}

// PKCEChallenge holds a PKCE verifier and challenge pair.
// The verifier is kept secret by the client, and the challenge is sent to
// the authorization endpoint.
type PKCEChallenge struct {
	// Verifier is the high-entropy cryptographic random string (kept secret)
	Verifier string

	// Challenge is the base64url-encoded SHA256 hash of the verifier (sent to server)
	Challenge string

	// Method is always "S256" for SHA256
	Method string
}

// GeneratePKCEChallenge creates a new PKCE code verifier and challenge pair
// with 256 bits of entropy and SHA256 hashing per RFC 7636.
func GeneratePKCEChallenge() (*PKCEChallenge, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate PKCE verifier: %w", err)
	}
	verifier := base64.RawURLEncoding.EncodeToString(buf)

	// Compute S256 challenge: BASE64URL(SHA256(verifier))
	hash := sha256.Sum256([]byte(verifier))
	challenge := base64.RawURLEncoding.EncodeToString(hash[:])

	return &PKCEChallenge{
		Verifier:  verifier,
		Challenge: challenge,
		Method:    "S256",
	}, nil
}

// ParseAuthorizationCallback parses the callback URL from an authorization
// redirect, extracting the authorization code and state from its query
// parameters.
//
// Returns an error if the callback carries an error response (e.g. the user
// denied authorization) or no code. Callers should verify the returned state
// matches the value they sent before exchanging the code.
func ParseAuthorizationCallback(callbackURL string) (code, state string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse callback URL: %w", err)
	}

	query := u.Query()

	if errorCode := query.Get("error"); errorCode != "" {
		errorDesc := query.Get("error_description")
		return "", "", fmt.Errorf("authorization error: %s - %s", errorCode, errorDesc)
	}

	code = query.Get("code")
	if code == "" {
		return "", "", fmt.Errorf("callback missing authorization code")
	}

	state = query.Get("state")

	return code, state, nil
}
