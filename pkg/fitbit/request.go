package fitbit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Method is an HTTP method accepted by Send. Methods are matched by value;
// anything outside the declared set is rejected.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// CurrentUser is the user path segment Fitbit resolves to the owner of the
// access token.
const CurrentUser = "-"

const defaultFileExt = ".json"

// Request describes a single resource API call for Send.
type Request struct {
	// Method selects the HTTP verb. Defaults to MethodGet.
	Method Method

	// Namespace is the resource path, e.g. "profile" or
	// "activities/heart/date/today/1d".
	Namespace string

	// User is the user path segment. Empty omits the user/{id}/ segment
	// entirely; use CurrentUser to target the token's owner.
	User string

	// FileExt is the response format suffix. Defaults to ".json".
	FileExt string

	// Data is form-encoded into the request body for POST. Ignored for
	// every other method.
	Data url.Values
}

// Send issues an authenticated request against the resource API.
//
// The URL is {APIURL}/1/[user/{User}/]{Namespace}{FileExt}. The request
// carries Authorization: Bearer with the client's current token, merged with
// the custom headers set via SetHeaders; custom headers win on collision.
//
// The response is returned raw. Non-2xx statuses are not errors at this
// layer; only transport failures and unsupported methods produce an error.
func (c *Client) Send(ctx context.Context, r Request) (*Response, error) {
	method := r.Method
	if method == "" {
		method = MethodGet
	}

	var body io.Reader
	switch method {
	case MethodGet, MethodPut, MethodDelete:
		// no body
	case MethodPost:
		if len(r.Data) > 0 {
			body = strings.NewReader(r.Data.Encode())
		}
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}

	fileExt := r.FileExt
	if fileExt == "" {
		fileExt = defaultFileExt
	}

	var path strings.Builder
	path.WriteString("/1/")
	if r.User != "" {
		path.WriteString("user/" + r.User + "/")
	}
	path.WriteString(r.Namespace + fileExt)

	req, err := http.NewRequestWithContext(ctx, string(method), c.url(path.String()), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Custom headers last so they take precedence, Authorization included.
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return c.do(req)
}

// Get issues an authenticated GET for a namespace on the current user's
// resources, e.g. Get(ctx, "profile") fetches /1/user/-/profile.json.
func (c *Client) Get(ctx context.Context, namespace string) (*Response, error) {
	return c.Send(ctx, Request{Method: MethodGet, Namespace: namespace, User: CurrentUser})
}

// GetUser is Get against an explicit user ID instead of the token's owner.
func (c *Client) GetUser(ctx context.Context, namespace, user string) (*Response, error) {
	return c.Send(ctx, Request{Method: MethodGet, Namespace: namespace, User: user})
}

// Post issues an authenticated POST with a form-encoded body for the current
// user.
func (c *Client) Post(ctx context.Context, namespace string, data url.Values) (*Response, error) {
	return c.Send(ctx, Request{Method: MethodPost, Namespace: namespace, User: CurrentUser, Data: data})
}

// Delete issues an authenticated DELETE. Unlike Get and Post it omits the
// user path segment; use Send directly to delete a user-scoped resource.
func (c *Client) Delete(ctx context.Context, namespace string) (*Response, error) {
	return c.Send(ctx, Request{Method: MethodDelete, Namespace: namespace})
}
