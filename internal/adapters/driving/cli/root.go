package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fbgraph/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fbgraph/internal/connectors/facebook"
	"github.com/custodia-labs/fbgraph/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// configPath overrides the default config file location.
	configPath string

	// graphVersion overrides the configured Graph API version.
	graphVersion string

	// clientOptions are passed to every Graph API client the CLI creates.
	clientOptions []facebook.Option
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "fbgraph",
	Short: "Command-line client for the Facebook Graph API",
	Long: `fbgraph talks to the Facebook Graph API.

It builds OAuth login URLs, exchanges authorization codes for access tokens
and issues GET, POST and DELETE calls with an access token attached.

Settings are read from ~/.fbgraph/config.toml, a .env file and FB_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed to stderr with tokens
// and app secrets masked, since transport errors embed the request URL.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", facebook.Redact(err.Error()))
	}
	return err
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.fbgraph/config.toml)")
	rootCmd.PersistentFlags().StringVar(&graphVersion, "graph-version", "", "Graph API version (default "+facebook.DefaultGraphVersion+")")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if err := file.LoadEnv(); err != nil {
			logger.Warn("cli: %v", err)
		}
		return nil
	}
}

// loadSettings reads the config file and applies environment and flag overrides.
func loadSettings() (*file.ConfigStore, *file.Settings, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, nil, err
	}

	settings, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	settings.ApplyEnv()
	if graphVersion != "" {
		settings.GraphVersion = graphVersion
	}

	logger.Debug("cli: loaded settings from %s", store.Path())
	return store, settings, nil
}

// newClient creates a Graph API client from the current settings.
func newClient() (*facebook.Client, *file.ConfigStore, error) {
	store, settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	client, err := facebook.New(settings.ClientConfig(), clientOptions...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (run 'fbgraph configure' or set FB_ACCESS_TOKEN)", err)
	}
	return client, store, nil
}
