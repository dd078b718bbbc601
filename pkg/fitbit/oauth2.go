package fitbit

import (
	"time"

	"golang.org/x/oauth2"
)

// Endpoint returns the client's OAuth2 endpoints in golang.org/x/oauth2
// form. Client credentials travel in the Authorization header, matching the
// Basic-auth scheme the token endpoint expects.
func (c *Client) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:   c.LoginURL,
		TokenURL:  c.url("/oauth2/token"),
		AuthStyle: oauth2.AuthStyleInHeader,
	}
}

// OAuth2Config builds a golang.org/x/oauth2 configuration mirroring this
// client. Use it when you want the ecosystem's TokenSource machinery
// (automatic refresh, wrapped HTTP clients) instead of this package's raw
// pass-through token handling.
func (c *Client) OAuth2Config(redirectURI string, scopes []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint:     c.Endpoint(),
		RedirectURL:  redirectURI,
		Scopes:       scopes,
	}
}

// OAuth2Token converts a decoded token response into an *oauth2.Token,
// with the expiry computed from ExpiresIn relative to now.
func (tr *TokenResponse) OAuth2Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		TokenType:    tr.TokenType,
		RefreshToken: tr.RefreshToken,
	}
	if tr.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return tok
}
