// Package strava exchanges and refreshes Strava OAuth tokens and keeps each
// athlete's latest refresh token in the key-value store.
package strava

import (
	"github.com/pysugar/kreuzungen-auth/internal/config"
	"golang.org/x/oauth2"
)

// Grant types sent to the token endpoint.
const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// NewOAuthConfig returns the oauth2 config for the Strava provider.
// Strava expects the client credentials in the form body and a single
// comma-separated scope parameter.
func NewOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL(),
		Scopes:       []string{cfg.Scopes},
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.StravaAuthorizeURL,
			TokenURL:  cfg.TokenURL(),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthCodeURL returns the consent page URL users are redirected to.
func (c *Client) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("", oauth2.SetAuthURLParam("approval_prompt", "force"))
}
