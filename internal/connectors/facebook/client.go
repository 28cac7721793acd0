package facebook

import (
	"net/http"
	"strings"
	"sync/atomic"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a Facebook Graph API client.
//
// Config and base URL are fixed at construction. The access token may be
// replaced at any time with SetAccessToken.
type Client struct {
	cfg        Config
	graphHost  string
	loginHost  string
	baseURL    string
	token      atomic.Pointer[string]
	httpClient Doer
	limiter    *RateLimiter
	newState   func() (string, error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for all requests.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithRateLimit throttles outbound requests on the client side.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(c *Client) {
		c.limiter = NewRateLimiter(cfg)
	}
}

// WithStateGenerator replaces the generator of OAuth state values.
func WithStateGenerator(fn func() (string, error)) Option {
	return func(c *Client) {
		if fn != nil {
			c.newState = fn
		}
	}
}

// WithGraphHost overrides the Graph API host, e.g. to target a test server.
// The login dialog host is not affected.
func WithGraphHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.graphHost = strings.TrimRight(host, "/")
		}
	}
}

// New creates a Graph API client.
// Returns ErrConfiguration if cfg has neither an access token nor the full
// set of app credentials.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	c := &Client{
		cfg:        cfg,
		graphHost:  defaultGraphHost,
		loginHost:  defaultLoginHost,
		httpClient: http.DefaultClient,
		newState:   NewState,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = c.graphHost + "/" + cfg.GraphVersion
	if cfg.AccessToken != "" {
		c.SetAccessToken(cfg.AccessToken)
	}

	return c, nil
}

// BaseURL returns the versioned Graph API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GraphVersion returns the Graph API version the client targets.
func (c *Client) GraphVersion() string {
	return c.cfg.GraphVersion
}

// AccessToken returns the stored access token, or "" if none is set.
func (c *Client) AccessToken() string {
	if p := c.token.Load(); p != nil {
		return *p
	}
	return ""
}

// SetAccessToken replaces the stored access token. An empty token clears it.
func (c *Client) SetAccessToken(token string) {
	c.token.Store(&token)
}
