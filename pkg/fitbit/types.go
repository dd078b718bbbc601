package fitbit

import (
	"encoding/json"
	"fmt"
)

// TokenResponse represents the OAuth2 token endpoint response per RFC 6749,
// plus the user_id field Fitbit adds for the resource owner.
type TokenResponse struct {
	// AccessToken authenticates resource API calls (a JWT, see
	// DecodeAccessTokenClaims)
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of granted scopes (see ParseScope)
	Scope string `json:"scope,omitempty"`

	// UserID is the Fitbit ID of the resource owner
	UserID string `json:"user_id,omitempty"`
}

// APIError is one entry of Fitbit's error envelope.
type APIError struct {
	// ErrorType is Fitbit's error code (e.g. "invalid_grant", "expired_token")
	ErrorType string `json:"errorType"`

	// FieldName names the offending request field, when the server reports one
	FieldName string `json:"fieldName,omitempty"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// DecodeToken decodes the response body as a token endpoint response. It is
// an opt-in convenience; the token operations always return the raw Response
// whatever the status, so check StatusCode before decoding.
func (r *Response) DecodeToken() (*TokenResponse, error) {
	var tr TokenResponse
	if err := json.Unmarshal(r.Body, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return &tr, nil
}

// DecodeErrors decodes Fitbit's error envelope ({"errors": [...]}) from the
// response body. Like DecodeToken this is opt-in; the client itself never
// interprets error bodies.
func (r *Response) DecodeErrors() ([]APIError, error) {
	var envelope struct {
		Errors []APIError `json:"errors"`
	}
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode error response: %w", err)
	}
	return envelope.Errors, nil
}
