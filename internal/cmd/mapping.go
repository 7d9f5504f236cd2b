package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

func newMappingCommand(a *app) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:       "mapping <table|topic>",
		Short:     "Print a search index mapping",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(payloads.DocumentKindTable), string(payloads.DocumentKindTopic)},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.lib.SearchIndex().MappingJSON(payloads.DocumentKind(args[0]))
			if err != nil {
				return err
			}
			if !compact {
				var indented bytes.Buffer
				if err := json.Indent(&indented, data, "", "  "); err != nil {
					return err
				}
				data = indented.Bytes()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print the mapping on a single line")
	return cmd
}
