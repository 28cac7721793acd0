// Package facebook provides a minimal client for the Facebook Graph API.
//
// This package provides:
//   - OAuth login URL construction with a fresh anti-CSRF state per call
//   - Authorization code exchange against the Graph API token endpoint
//   - Generic GET, POST and DELETE calls with an access token attached
//
// # Configuration
//
// A Client is created from a Config holding either an access token or the
// full set of app credentials (app id, app secret and redirect URL). The
// Graph API version defaults to DefaultGraphVersion and is fixed for the
// lifetime of the client:
//
//	https://graph.facebook.com/<version>
//
// # Access Tokens
//
// Every API call carries the token as the access_token query parameter,
// never as a header or body field. A per-call token given with
// WithAccessToken takes precedence over the token stored on the client.
// Calls fail with ErrMissingToken before any network I/O when neither is set.
//
// The stored token is a last-writer-wins cell. A request that starts while
// SetAccessToken runs may observe either the old or the new token.
//
// # Responses
//
// Responses are returned as received. Graph API error envelopes, paging
// cursors and rate-limit headers are left to the caller. Non-2xx responses
// are reported as *StatusError.
package facebook
