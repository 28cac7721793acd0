package facebook

import (
	"fmt"
	"strings"
)

// DefaultGraphVersion is the Graph API version used when Config.GraphVersion is empty.
const DefaultGraphVersion = "v20.0"

// Facebook hosts.
const (
	defaultGraphHost = "https://graph.facebook.com"
	defaultLoginHost = "https://www.facebook.com"
)

// Config holds the settings a Client is created from.
type Config struct {
	// AppID is the Facebook app id (OAuth client_id).
	AppID string
	// AppSecret is the Facebook app secret (OAuth client_secret).
	AppSecret string
	// RedirectURL is the OAuth redirect_uri registered for the app.
	RedirectURL string
	// GraphVersion is the API version segment, e.g. "v20.0".
	GraphVersion string
	// AccessToken is an optional token to start the client with.
	AccessToken string
}

// Validate checks that either an access token or the full set of app
// credentials is present.
func (c Config) Validate() error {
	if c.AccessToken != "" {
		return nil
	}

	var missing []string
	if c.AppID == "" {
		missing = append(missing, "app id")
	}
	if c.AppSecret == "" {
		missing = append(missing, "app secret")
	}
	if c.RedirectURL == "" {
		missing = append(missing, "redirect url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// withDefaults returns a copy of c with defaults applied.
func (c Config) withDefaults() Config {
	if c.GraphVersion == "" {
		c.GraphVersion = DefaultGraphVersion
	}
	return c
}
