// Package file stores fbgraph settings in a TOML file.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/fbgraph/internal/connectors/facebook"
)

// Environment variables that override file settings.
const (
	EnvAppID        = "FB_APP_ID"
	EnvAppSecret    = "FB_APP_SECRET"
	EnvRedirectURL  = "FB_REDIRECT_URL"
	EnvGraphVersion = "FB_GRAPH_VERSION"
	EnvAccessToken  = "FB_ACCESS_TOKEN"
)

// Settings is the persisted client configuration.
type Settings struct {
	AppID        string `toml:"app_id,omitempty"`
	AppSecret    string `toml:"app_secret,omitempty"`
	RedirectURL  string `toml:"redirect_url,omitempty"`
	GraphVersion string `toml:"graph_version,omitempty"`
	AccessToken  string `toml:"access_token,omitempty"`
}

// ClientConfig maps the settings to a Graph API client configuration.
func (s *Settings) ClientConfig() facebook.Config {
	return facebook.Config{
		AppID:        s.AppID,
		AppSecret:    s.AppSecret,
		RedirectURL:  s.RedirectURL,
		GraphVersion: s.GraphVersion,
		AccessToken:  s.AccessToken,
	}
}

// ApplyEnv overrides settings with any non-empty FB_* environment variables.
func (s *Settings) ApplyEnv() {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvAppID, &s.AppID},
		{EnvAppSecret, &s.AppSecret},
		{EnvRedirectURL, &s.RedirectURL},
		{EnvGraphVersion, &s.GraphVersion},
		{EnvAccessToken, &s.AccessToken},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.field = v
		}
	}
}

// LoadEnv loads environment files into the process environment.
// Variables already set are not overwritten and missing files are skipped.
// With no arguments ".env" in the working directory is loaded.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return nil
}

// ConfigStore reads and writes settings in a TOML file.
type ConfigStore struct {
	path string
}

// NewConfigStore creates a store backed by path.
// An empty path selects ~/.fbgraph/config.toml.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		path = filepath.Join(home, ".fbgraph", "config.toml")
	}
	return &ConfigStore{path: path}, nil
}

// Path returns the config file location.
func (s *ConfigStore) Path() string {
	return s.path
}

// Load reads settings from disk. A missing file yields empty settings.
func (s *ConfigStore) Load() (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.path, err)
	}
	return &settings, nil
}

// Save writes settings to disk, creating the parent directory if needed.
// The file holds secrets and is written with owner-only permissions.
func (s *ConfigStore) Save(settings *Settings) error {
	if settings == nil {
		return errors.New("config: nil settings")
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
