package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ExchangeOptions carries the optional parameters for
// ExchangeAuthorizationCode. A nil options value omits all of them.
type ExchangeOptions struct {
	// ExpiresIn requests an access token lifetime in seconds. Omitted when zero.
	ExpiresIn int

	// State is the opaque value from the authorization request. Omitted when empty.
	State string

	// CodeVerifier is the PKCE verifier matching the challenge sent with the
	// login URL. Omitted when empty.
	CodeVerifier string
}

// ExchangeAuthorizationCode exchanges an authorization code for tokens.
//
// The response is returned raw; use Response.DecodeToken to read the granted
// tokens, or inspect StatusCode and Body directly. A non-2xx status (invalid
// code, mismatched redirect URI, ...) is not an error at this layer.
func (c *Client) ExchangeAuthorizationCode(
	ctx context.Context,
	code, redirectURI string,
	opts *ExchangeOptions,
) (*Response, error) {
	data := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"client_id":    {c.clientID},
		"redirect_uri": {redirectURI},
	}

	if opts != nil {
		if opts.ExpiresIn > 0 {
			data.Set("expires_in", strconv.Itoa(opts.ExpiresIn))
		}
		if opts.State != "" {
			data.Set("state", opts.State)
		}
		if opts.CodeVerifier != "" {
			data.Set("code_verifier", opts.CodeVerifier)
		}
	}

	return c.requestToken(ctx, "/oauth2/token", data)
}

// RefreshToken requests new tokens using a refresh token. A positive
// expiresIn requests an access token lifetime in seconds; zero omits the
// parameter and leaves the lifetime to the server.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string, expiresIn int) (*Response, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}

	if expiresIn > 0 {
		data.Set("expires_in", strconv.Itoa(expiresIn))
	}

	return c.requestToken(ctx, "/oauth2/token", data)
}

// RevokeToken revokes an access or refresh token.
func (c *Client) RevokeToken(ctx context.Context, token string) (*Response, error) {
	data := url.Values{
		"token": {token},
	}

	return c.requestToken(ctx, "/oauth2/revoke", data)
}

// requestToken is the shared mechanism behind the token and revoke
// operations: a form-encoded POST authenticated with the application
// credentials via HTTP Basic auth.
func (c *Client) requestToken(ctx context.Context, path string, data url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url(path),
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+c.basicAuth())

	return c.do(req)
}
