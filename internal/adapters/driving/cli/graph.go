package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fbgraph/internal/connectors/facebook"
)

var (
	// callToken overrides the stored access token for a single call.
	callToken string
	// callParams holds key=value query parameters for get.
	callParams []string
	// postData holds key=value body fields for post.
	postData []string
	// postJSON is a raw JSON body for post.
	postJSON string
)

var getCmd = &cobra.Command{
	Use:     "get <path>",
	Short:   "Issue a GET request to the Graph API",
	Example: "  fbgraph get /me --param fields=id,name",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		params, err := parsePairs(callParams)
		if err != nil {
			return err
		}

		opts := callOptions()
		if len(params) > 0 {
			opts = append(opts, facebook.WithParams(params))
		}

		resp, err := client.Get(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp.Body)
	},
}

var postCmd = &cobra.Command{
	Use:   "post <path>",
	Short: "Issue a POST request to the Graph API",
	Example: `  fbgraph post /me/feed --data message="Hello"
  fbgraph post /me/feed --json '{"message":"Hello"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := postBody()
		if err != nil {
			return err
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Post(cmd.Context(), args[0], body, callOptions()...)
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp.Body)
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <path>",
	Short:   "Issue a DELETE request to the Graph API",
	Example: "  fbgraph delete /123456789",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		resp, err := client.Delete(cmd.Context(), args[0], callOptions()...)
		if err != nil {
			return err
		}
		return printBody(cmd.OutOrStdout(), resp.Body)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{getCmd, postCmd, deleteCmd} {
		cmd.Flags().StringVar(&callToken, "token", "", "access token for this call (overrides the configured token)")
		rootCmd.AddCommand(cmd)
	}

	getCmd.Flags().StringArrayVarP(&callParams, "param", "p", nil, "query parameter as key=value (repeatable)")
	postCmd.Flags().StringArrayVarP(&postData, "data", "d", nil, "body field as key=value (repeatable)")
	postCmd.Flags().StringVar(&postJSON, "json", "", "raw JSON request body")
	postCmd.MarkFlagsMutuallyExclusive("data", "json")
}

func callOptions() []facebook.CallOption {
	if callToken == "" {
		return nil
	}
	return []facebook.CallOption{facebook.WithAccessToken(callToken)}
}

// postBody builds the POST body from --json or --data.
func postBody() (any, error) {
	if postJSON != "" {
		if !json.Valid([]byte(postJSON)) {
			return nil, fmt.Errorf("--json is not valid JSON")
		}
		return json.RawMessage(postJSON), nil
	}

	body := make(map[string]any, len(postData))
	for _, pair := range postData {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --data %q, expected key=value", pair)
		}
		body[key] = value
	}
	return body, nil
}

// parsePairs converts key=value strings to query values.
func parsePairs(pairs []string) (url.Values, error) {
	values := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		values.Add(key, value)
	}
	return values, nil
}

// printBody writes body to w, indenting it when it is JSON.
func printBody(w io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		_, err = w.Write(body)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
