package cmd

import (
	"github.com/spf13/cobra"
)

func newDeployCommand(a *app) *cobra.Command {
	flags := &requestFlags{}
	var undeploy string
	cmd := &cobra.Command{
		Use:   "deploy -f <request>",
		Short: "Validate an ingestion workflow request and deploy it",
		Long: `Validate an ingestion workflow request and hand it to the scheduler.
Use --undeploy <name> to remove a deployed workflow instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if undeploy != "" {
				return a.lib.Deployer().Undeploy(cmd.Context(), undeploy)
			}

			req, err := a.assemble(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			result, err := a.lib.Deployer().Deploy(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&undeploy, "undeploy", "", "name of a deployed workflow to remove")
	cmd.MarkFlagsMutuallyExclusive("file", "undeploy")
	cmd.MarkFlagsOneRequired("file", "undeploy")
	return cmd
}
