package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fbgraph/internal/adapters/driven/config/file"
)

var (
	cfgAppID       string
	cfgAppSecret   string
	cfgRedirectURL string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save Facebook app credentials to the config file",
	Long: `Save the app id, app secret and redirect URL used for the OAuth flow.

Values not given as flags are prompted for. The app secret is read without
echo when stdin is a terminal.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := file.NewConfigStore(configPath)
		if err != nil {
			return err
		}
		settings, err := store.Load()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.ErrOrStderr()

		if cfgAppID == "" {
			if cfgAppID, err = prompt(reader, out, "App ID: ", settings.AppID); err != nil {
				return err
			}
		}
		if cfgRedirectURL == "" {
			if cfgRedirectURL, err = prompt(reader, out, "Redirect URL: ", settings.RedirectURL); err != nil {
				return err
			}
		}
		if cfgAppSecret == "" {
			if cfgAppSecret, err = promptSecret(cmd.InOrStdin(), reader, out, "App Secret: ", settings.AppSecret); err != nil {
				return err
			}
		}

		settings.AppID = cfgAppID
		settings.AppSecret = cfgAppSecret
		settings.RedirectURL = cfgRedirectURL
		if graphVersion != "" {
			settings.GraphVersion = graphVersion
		}

		if err := settings.ClientConfig().Validate(); err != nil {
			return err
		}
		if err := store.Save(settings); err != nil {
			return err
		}

		fmt.Fprintf(out, "Configuration saved to %s\n", store.Path())
		return nil
	},
}

func init() {
	configureCmd.Flags().StringVar(&cfgAppID, "app-id", "", "Facebook app id")
	configureCmd.Flags().StringVar(&cfgAppSecret, "app-secret", "", "Facebook app secret")
	configureCmd.Flags().StringVar(&cfgRedirectURL, "redirect-url", "", "OAuth redirect URL")

	rootCmd.AddCommand(configureCmd)
}

// prompt reads a line, returning current when the input is empty.
func prompt(reader *bufio.Reader, out io.Writer, label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s[%s] ", label, current)
	}
	fmt.Fprint(out, label)

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

// promptSecret reads a secret without echo when in is a terminal.
func promptSecret(in io.Reader, reader *bufio.Reader, out io.Writer, label, current string) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return prompt(reader, out, label, current)
	}

	if current != "" {
		label += "[unchanged] "
	}
	fmt.Fprint(out, label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	if len(secret) == 0 {
		return current, nil
	}
	return strings.TrimSpace(string(secret)), nil
}
