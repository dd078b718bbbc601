package fitbit

import (
	"fmt"
	"io"
	"net/http"
)

// Response is the raw outcome of an API call: status, headers and body
// exactly as the server returned them. The body is fully read and the
// network connection released before the Response is handed back.
//
// The client never converts a non-success status into an error; API-level
// failures (invalid token, invalid scope, expired code, ...) are detected by
// inspecting StatusCode and Body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// do executes a prepared request and drains the response body. Only
// transport failures produce an error.
func (c *Client) do(req *http.Request) (*Response, error) {
	if c.Logger != nil {
		c.Logger.Debug("fitbit: sending request",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.Logger != nil {
		c.Logger.Debug("fitbit: received response",
			"status", resp.StatusCode,
			"bytes", len(body),
		)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
