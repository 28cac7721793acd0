package facebook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginURL(t *testing.T) {
	client, err := New(appConfig())
	require.NoError(t, err)

	loginURL, err := client.LoginURL("email", "public_profile")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(loginURL, "https://www.facebook.com/v20.0/dialog/oauth?"))

	u, err := url.Parse(loginURL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "testAppId", q.Get("client_id"))
	assert.Equal(t, "https://example.com/callback", q.Get("redirect_uri"))
	assert.Equal(t, "email,public_profile", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Len(t, q.Get("state"), 2*stateBytes)
}

func TestClient_LoginURL_FreshStatePerCall(t *testing.T) {
	client, err := New(appConfig())
	require.NoError(t, err)

	first, err := client.LoginURL("email")
	require.NoError(t, err)
	second, err := client.LoginURL("email")
	require.NoError(t, err)

	firstURL, err := url.Parse(first)
	require.NoError(t, err)
	secondURL, err := url.Parse(second)
	require.NoError(t, err)

	assert.NotEmpty(t, firstURL.Query().Get("state"))
	assert.NotEqual(t, firstURL.Query().Get("state"), secondURL.Query().Get("state"))
}

func TestClient_LoginURL_NoPermissions(t *testing.T) {
	client, err := New(appConfig())
	require.NoError(t, err)

	loginURL, err := client.LoginURL()
	require.NoError(t, err)

	u, err := url.Parse(loginURL)
	require.NoError(t, err)
	assert.True(t, u.Query().Has("scope"))
	assert.Empty(t, u.Query().Get("scope"))
}

func TestClient_LoginURL_StateError(t *testing.T) {
	client, err := New(appConfig(), WithStateGenerator(func() (string, error) {
		return "", errors.New("entropy exhausted")
	}))
	require.NoError(t, err)

	loginURL, err := client.LoginURL("email")

	assert.Empty(t, loginURL)
	assert.ErrorContains(t, err, "generate state")
}

func TestClient_AuthURL(t *testing.T) {
	client, err := New(appConfig(), WithGraphHost("http://localhost:9999"))
	require.NoError(t, err)

	authURL := client.AuthURL("fixed-state", "email")

	assert.Contains(t, authURL, "https://www.facebook.com/v20.0/dialog/oauth")
	assert.Contains(t, authURL, "state=fixed-state")
	assert.Contains(t, authURL, "client_id=testAppId")
	assert.Contains(t, authURL, "scope=email")
}

func TestNewState(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		state, err := NewState()
		require.NoError(t, err)
		assert.Len(t, state, 64)
		assert.False(t, seen[state], "duplicate state %s", state)
		seen[state] = true
	}
}

func TestClient_ExchangeCode(t *testing.T) {
	doer := new(mockDoer)
	client, err := New(appConfig(), WithHTTPClient(doer))
	require.NoError(t, err)

	doer.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.Method == http.MethodGet &&
			req.URL.Host == "graph.facebook.com" &&
			req.URL.Path == "/v20.0/oauth/access_token" &&
			q.Get("code") == "abc" &&
			q.Get("client_id") == "testAppId" &&
			q.Get("client_secret") == "testAppSecret" &&
			q.Get("redirect_uri") == "https://example.com/callback"
	})).Return(jsonResponse(http.StatusOK,
		`{"access_token":"newToken","token_type":"bearer","expires_in":5183944}`), nil).Once()

	resp, err := client.ExchangeCode(context.Background(), "abc")

	require.NoError(t, err)
	doer.AssertExpectations(t)
	assert.Contains(t, string(resp.Body), "newToken")
	assert.Empty(t, client.AccessToken(), "exchange must not change the stored token")

	token, err := resp.Token()
	require.NoError(t, err)
	assert.Equal(t, "newToken", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(5183944*time.Second), token.Expiry, time.Minute)
}

func TestClient_ExchangeCode_Server(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("code") != "good" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid verification code format."}}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
	}))
	defer server.Close()

	client, err := New(appConfig(), WithGraphHost(server.URL))
	require.NoError(t, err)

	resp, err := client.ExchangeCode(context.Background(), "good")
	require.NoError(t, err)
	token, err := resp.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.True(t, token.Expiry.IsZero())

	_, err = client.ExchangeCode(context.Background(), "bad")
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}
