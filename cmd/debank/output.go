package main

import (
	"errors"
	"fmt"
	"io"

	"debank_client/pkg/debank"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// describeError adds the DeBank error code, when present, in a highlighted form.
func describeError(err error) error {
	var apiErr *debank.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s (HTTP %d): %s", color.YellowString(string(apiErr.Code)), apiErr.Status, apiErr.Message)
	}
	return err
}
