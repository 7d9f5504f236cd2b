package cmd

import (
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	flags := &requestFlags{}
	cmd := &cobra.Command{
		Use:   "validate -f <request>",
		Short: "Validate an ingestion workflow request",
		Long: `Validate an ingestion workflow request and print the normalized request,
defaults included. A rejected request prints its violations and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.assemble(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			return printJSON(cmd, req)
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
