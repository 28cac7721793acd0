package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var loginURLCmd = &cobra.Command{
	Use:   "login-url [permission...]",
	Short: "Print the Facebook login dialog URL",
	Long: `Print the Facebook login dialog URL for the given permissions.

Open the URL in a browser. Facebook redirects back to the configured
redirect URL with a code parameter; pass it to 'fbgraph exchange'.`,
	Example: "  fbgraph login-url email public_profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		loginURL, err := client.LoginURL(args...)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), loginURL)
		return nil
	},
}

var saveToken bool

var exchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for an access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.ExchangeCode(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("exchange code: %w", err)
		}

		token, err := resp.Token()
		if err != nil {
			return err
		}
		client.SetAccessToken(token.AccessToken)

		out, err := json.MarshalIndent(token, "", "  ")
		if err != nil {
			return fmt.Errorf("encode token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !saveToken {
			return nil
		}
		// Reload so environment overrides are not written to disk.
		settings, err := store.Load()
		if err != nil {
			return err
		}
		settings.AccessToken = client.AccessToken()
		if err := store.Save(settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Access token saved to %s\n", store.Path())
		return nil
	},
}

func init() {
	exchangeCmd.Flags().BoolVar(&saveToken, "save", false, "save the access token to the config file")

	rootCmd.AddCommand(loginURLCmd)
	rootCmd.AddCommand(exchangeCmd)
}
