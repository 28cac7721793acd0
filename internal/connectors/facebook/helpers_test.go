package facebook

import (
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"
)

// mockDoer is a testify mock for the HTTP transport.
type mockDoer struct {
	mock.Mock
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func appConfig() Config {
	return Config{
		AppID:        "testAppId",
		AppSecret:    "testAppSecret",
		RedirectURL:  "https://example.com/callback",
		GraphVersion: "v20.0",
	}
}
