package fitbit

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Default endpoints for the Fitbit Web API.
const (
	// DefaultAPIURL hosts the resource API and the token/revoke endpoints.
	DefaultAPIURL = "https://api.fitbit.com"

	// DefaultLoginURL is the browser-facing authorization endpoint users are
	// redirected to for consent.
	DefaultLoginURL = "https://www.fitbit.com/oauth2/authorize"
)

// Client is a client for the Fitbit Web API.
//
// The credentials given at construction are immutable and are only used to
// compute the Basic-auth header on token and revoke requests. The access
// token and custom headers are mutable caller-managed state; see the package
// documentation for the ownership model.
type Client struct {
	// APIURL is the base URL for resource and token requests. A trailing
	// slash is tolerated.
	APIURL string

	// LoginURL is the authorization endpoint used by BuildLoginURL.
	LoginURL string

	// HTTPClient performs all network calls. Replace it to control timeouts,
	// redirects or transport behaviour.
	HTTPClient *http.Client

	// Logger, when set, logs each outgoing request and its response status
	// at Debug level. Nil disables logging entirely.
	Logger *slog.Logger

	clientID     string
	clientSecret string

	token   string
	headers map[string]string
}

// NewClient creates a client for the given application credentials. The
// credentials are opaque strings and are not validated; malformed values
// only surface as errors from the remote server.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		APIURL:   DefaultAPIURL,
		LoginURL: DefaultLoginURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// SetToken stores the access token used for authenticated resource requests.
// The client performs no validation or expiry tracking; the token lifecycle
// is entirely caller-managed.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the access token currently held by the client.
func (c *Client) Token() string {
	return c.token
}

// SetHeaders replaces the custom header set wholesale. The headers are merged
// into every subsequent authenticated request and win over the client's own
// headers (including Authorization) on key collision.
func (c *Client) SetHeaders(headers map[string]string) {
	c.headers = headers
}

// Headers returns the current custom header set.
func (c *Client) Headers() map[string]string {
	return c.headers
}

// url builds a complete URL by appending the path to the API base URL.
func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.APIURL, "/") + path
}

// basicAuth computes the Basic-auth value for token and revoke requests.
func (c *Client) basicAuth() string {
	return base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
}
