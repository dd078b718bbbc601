/*
Package fitbit provides a client for the Fitbit Web API.

The client covers the OAuth2 authorization code flow (login URL
construction, code/token exchange, refresh, revocation) and authenticated
resource requests. It is deliberately a thin layer: it assembles URLs and
request options, delegates to net/http, and hands back the raw response.
Non-2xx statuses are never converted into errors by this package; callers
inspect Response.StatusCode and Response.Body themselves.

# Quick Start

	client := fitbit.NewClient("client-id", "client-secret")

	// 1. Send the user to Fitbit's consent page.
	state := fitbit.NewState()
	loginURL := client.BuildLoginURL("https://app.example.com/callback",
		[]string{fitbit.ScopeProfile, fitbit.ScopeSleep},
		&fitbit.LoginURLOptions{State: state})

	// 2. After the redirect, exchange the authorization code for tokens.
	code, _, err := fitbit.ParseAuthorizationCallback(callbackURL)
	resp, err := client.ExchangeAuthorizationCode(ctx, code, "https://app.example.com/callback", nil)
	tokens, err := resp.DecodeToken()

	// 3. Store the access token and make authenticated calls.
	client.SetToken(tokens.AccessToken)
	profile, err := client.Get(ctx, "profile")

# Token Lifecycle

The package performs no token management. The access token is a plain string
on the client: the caller sets it after an exchange, refreshes it explicitly
with RefreshToken when the API starts returning 401, and revokes it with
RevokeToken when done. Callers who want automatic refresh can convert a
decoded TokenResponse into the golang.org/x/oauth2 ecosystem via
TokenResponse.OAuth2Token and Client.OAuth2Config.

# Ownership

A Client is meant to be owned by a single logical session. Its token and
custom header fields are plain, unsynchronised state; callers sharing one
instance across goroutines that mutate it must synchronise externally.
*/
package fitbit
