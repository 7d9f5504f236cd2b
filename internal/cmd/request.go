package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

type requestFlags struct {
	file   string
	format string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "request document, - reads stdin")
	cmd.Flags().StringVar(&f.format, "format", "", "document format, json or yaml (default: from the file extension)")
}

func (f *requestFlags) documentFormat() (payloads.DocumentFormat, error) {
	switch strings.ToLower(f.format) {
	case "json":
		return payloads.FormatJSON, nil
	case "yaml", "yml":
		return payloads.FormatYAML, nil
	case "":
		if strings.EqualFold(filepath.Ext(f.file), ".json") {
			return payloads.FormatJSON, nil
		}
		return payloads.FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q, expected json or yaml", f.format)
}

func (f *requestFlags) read(cmd *cobra.Command) ([]byte, error) {
	if f.file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(f.file)
}

// assemble reads the request document and runs it through the assembler.
// A rejection is printed as JSON on stdout and reported as errRejected.
func (a *app) assemble(ctx context.Context, cmd *cobra.Command, flags *requestFlags) (payloads.IngestionWorkflowRequest, error) {
	format, err := flags.documentFormat()
	if err != nil {
		return payloads.IngestionWorkflowRequest{}, err
	}
	data, err := flags.read(cmd)
	if err != nil {
		return payloads.IngestionWorkflowRequest{}, fmt.Errorf("failed to read request: %w", err)
	}

	req, err := a.lib.Ingestion().AssembleDocument(ctx, data, format)
	var rejection *payloads.RejectionError
	if errors.As(err, &rejection) {
		if printErr := printJSON(cmd, rejection); printErr != nil {
			return payloads.IngestionWorkflowRequest{}, printErr
		}
		return payloads.IngestionWorkflowRequest{}, errRejected
	}
	return req, err
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
