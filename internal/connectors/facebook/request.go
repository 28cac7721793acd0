package facebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/fbgraph/internal/logger"
)

// CallOption configures a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	accessToken string
	params      url.Values
}

// WithAccessToken uses token for this call instead of the stored one.
func WithAccessToken(token string) CallOption {
	return func(o *callOptions) {
		o.accessToken = token
	}
}

// WithParams adds query parameters to the call. A caller-supplied
// access_token parameter is always replaced by the resolved token.
func WithParams(params url.Values) CallOption {
	return func(o *callOptions) {
		if o.params == nil {
			o.params = url.Values{}
		}
		for k, vs := range params {
			for _, v := range vs {
				o.params.Add(k, v)
			}
		}
	}
}

// Get issues a GET request to path.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, MethodGet, path, nil, opts...)
}

// Post issues a POST request to path with body encoded as JSON.
// The access token is sent as a query parameter, not in the body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, MethodPost, path, body, opts...)
}

// Delete issues a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.Do(ctx, MethodDelete, path, nil, opts...)
}

// Do dispatches a Graph API request. The body is only sent for MethodPost.
func (c *Client) Do(ctx context.Context, method Method, path string, body any, opts ...CallOption) (*Response, error) {
	httpMethod, err := method.httpMethod()
	if err != nil {
		return nil, err
	}

	var call callOptions
	for _, opt := range opts {
		opt(&call)
	}

	token := resolveToken(call.accessToken, c.AccessToken())
	if token == "" {
		return nil, ErrMissingToken
	}

	reqURL, err := c.buildURL(path, token, call.params)
	if err != nil {
		return nil, err
	}

	var payload io.Reader = http.NoBody
	if method == MethodPost {
		if body == nil {
			body = struct{}{}
		}
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, reqURL, payload)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if method == MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req)
}

// buildURL joins the base URL and path and attaches the query parameters.
// Any query string already on path is kept; a malformed one is an error
// rather than a request sent with pairs missing.
func (c *Client) buildURL(path, token string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + normalizePath(path))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", fmt.Errorf("parse query: %w", err)
	}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("access_token", token)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// send performs req and reads the whole body. Transport errors are returned
// as is; non-2xx responses become *StatusError.
func (c *Client) send(ctx context.Context, req *http.Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	logger.Debug("facebook: [%s] %s %s", id, req.Method, Redact(req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("facebook: [%s] request error: %s", id, Redact(err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	logger.Debug("facebook: [%s] response status %d, body length %d", id, resp.StatusCode, len(body))

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body, Response: result}
	}

	return result, nil
}

// resolveToken returns explicit when set, otherwise stored.
func resolveToken(explicit, stored string) string {
	if explicit != "" {
		return explicit
	}
	return stored
}

// normalizePath ensures path starts with a slash.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

var secretParams = regexp.MustCompile(`(access_token|client_secret)=([^&\s"]*)`)

// Redact masks access_token and client_secret values in s. Transport errors
// carry the full request URL, so callers that print them should pass the
// message through Redact first.
func Redact(s string) string {
	return secretParams.ReplaceAllString(s, "$1=REDACTED")
}
