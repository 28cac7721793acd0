package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/fbgraph/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fbgraph/internal/connectors/facebook"
)

// commandResult captures the output of a CLI invocation.
type commandResult struct {
	stdout string
	stderr string
	err    error
}

// resetFlags restores flag-bound package variables between invocations.
func resetFlags() {
	verbose = false
	configPath = ""
	graphVersion = ""
	callToken = ""
	callParams = nil
	postData = nil
	postJSON = ""
	saveToken = false
	cfgAppID = ""
	cfgAppSecret = ""
	cfgRedirectURL = ""
	clientOptions = nil

	for _, cmd := range append(rootCmd.Commands(), rootCmd) {
		if f := cmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
		}
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// setupEnv isolates the test from the user's config and environment.
// It returns the config file path the CLI will use.
func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		file.EnvAppID, file.EnvAppSecret, file.EnvRedirectURL,
		file.EnvGraphVersion, file.EnvAccessToken,
	} {
		t.Setenv(key, "")
	}
	return filepath.Join(dir, "config.toml")
}

// executeCommand runs the root command with args and the given stdin.
func executeCommand(t *testing.T, stdin string, args ...string) commandResult {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// graphServer starts a fake Graph API and points new clients at it.
func graphServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// closedServer returns the URL of a Graph API server that is no longer listening.
func closedServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	return server
}

// withServer routes the next invocation's client to server.
func withServer(server *httptest.Server) {
	clientOptions = []facebook.Option{facebook.WithGraphHost(server.URL)}
}
