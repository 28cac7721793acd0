package facebook

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// stateBytes is the amount of entropy in a generated OAuth state.
const stateBytes = 32

// NewState returns a random hex-encoded OAuth state value.
func NewState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// LoginURL returns the Facebook login dialog URL for the given permissions,
// with a fresh state value. The caller redirects the user agent there and
// should compare the state echoed back on the redirect.
func (c *Client) LoginURL(permissions ...string) (string, error) {
	state, err := c.newState()
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return c.AuthURL(state, permissions...), nil
}

// AuthURL returns the Facebook login dialog URL with a caller-provided state.
// Permissions are joined with commas, as the login dialog expects.
func (c *Client) AuthURL(state string, permissions ...string) string {
	return c.oauthConfig().AuthCodeURL(state,
		oauth2.SetAuthURLParam("scope", strings.Join(permissions, ",")),
	)
}

// ExchangeCode exchanges an authorization code for an access token.
// The response is returned unmodified; use Response.Token to read it.
// The stored access token is not changed.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Response, error) {
	params := url.Values{
		"client_id":     {c.cfg.AppID},
		"client_secret": {c.cfg.AppSecret},
		"redirect_uri":  {c.cfg.RedirectURL},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.oauthConfig().Endpoint.TokenURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.send(ctx, req)
}

func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.AppID,
		ClientSecret: c.cfg.AppSecret,
		RedirectURL:  c.cfg.RedirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.loginHost + "/" + c.cfg.GraphVersion + "/dialog/oauth",
			TokenURL:  c.baseURL + "/oauth/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
