package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"debank_client/pkg/debank"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var bodyFile string

var callCmd = &cobra.Command{
	Use:   "call <group> [operation] [key=value ...]",
	Short: "Call one API operation and print the JSON response",
	Long: `Call one API operation and print the JSON response.

Query parameters are given as key=value pairs. A value containing commas is
sent as a list, e.g. ids=a,b,c. Body operations (wallet pre_exec_tx and
explain_tx) read their JSON payload from --body, use "-" for stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, params, err := parseCallArgs(args)
		if err != nil {
			return err
		}

		var body any
		if ep.Style == debank.JSONBody {
			if bodyFile == "" {
				return fmt.Errorf("%s requires --body", ep.ID())
			}
			if body, err = readBody(cmd.InOrStdin(), bodyFile); err != nil {
				return err
			}
		} else if bodyFile != "" {
			return fmt.Errorf("%s does not take a body", ep.ID())
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		data, err := client.Call(cmd.Context(), ep, params, body)
		if err != nil {
			return describeError(err)
		}
		return printJSON(cmd.OutOrStdout(), data)
	},
}

func init() {
	callCmd.Flags().StringVarP(&bodyFile, "body", "b", "", "JSON file with the request body, - for stdin")
}

// parseCallArgs resolves "<group> [operation] [key=value ...]".
func parseCallArgs(args []string) (debank.Endpoint, debank.Params, error) {
	group, rest := args[0], args[1:]
	op := ""
	if len(rest) > 0 && !strings.Contains(rest[0], "=") {
		op, rest = rest[0], rest[1:]
	}

	ep, ok := debank.LookupEndpoint(group, op)
	if !ok {
		return debank.Endpoint{}, nil, fmt.Errorf("unknown operation %q, see 'debank endpoints'", strings.TrimSuffix(group+"."+op, "."))
	}

	var params debank.Params
	for _, kv := range rest {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return debank.Endpoint{}, nil, fmt.Errorf("invalid parameter %q, expected key=value", kv)
		}
		params = params.Set(key, value)
	}
	if ep.Style == debank.JSONBody && len(params) > 0 {
		return debank.Endpoint{}, nil, fmt.Errorf("%s takes a JSON body, not query parameters", ep.ID())
	}
	return ep, params, nil
}

func readBody(stdin io.Reader, path string) (any, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read body from %s: %w", path, err)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("body in %s is not valid JSON", path)
	}
	return jsoniter.RawMessage(raw), nil
}
