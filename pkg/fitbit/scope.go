package fitbit

import "strings"

// OAuth2 scopes recognised by the Fitbit Web API. BuildLoginURL accepts any
// string, these are just the values the authorization server will grant.
const (
	ScopeActivity  = "activity"
	ScopeHeartrate = "heartrate"
	ScopeLocation  = "location"
	ScopeNutrition = "nutrition"
	ScopeProfile   = "profile"
	ScopeSettings  = "settings"
	ScopeSleep     = "sleep"
	ScopeSocial    = "social"
	ScopeWeight    = "weight"
)

// AllScopes returns every scope the Fitbit authorization server grants.
func AllScopes() []string {
	return []string{
		ScopeActivity,
		ScopeHeartrate,
		ScopeLocation,
		ScopeNutrition,
		ScopeProfile,
		ScopeSettings,
		ScopeSleep,
		ScopeSocial,
		ScopeWeight,
	}
}

// ParseScope splits a space-delimited scope string, as returned by the token
// endpoint, into individual scopes. Returns nil for an empty or
// whitespace-only input.
func ParseScope(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
