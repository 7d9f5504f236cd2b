package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/config"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"github.com/vatesfr/ingestion-sdk-go/sdk"
)

// errRejected is returned once the violations have been printed.
var errRejected = errors.New("ingestion request rejected")

// app holds what the subcommands share. It is filled by the root
// command before any subcommand runs.
type app struct {
	lib library.Library
	log *logger.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ingestctl",
		Short: "Validate and deploy ingestion workflow requests",
		Long: `ingestctl validates ingestion workflow requests written in YAML or JSON,
deploys accepted requests to the scheduler, and prints the search index mappings.

Configuration is read from the environment (and from a .env file in the
working directory): INGESTION_CATALOG_URL, INGESTION_CATALOG_TOKEN,
INGESTION_DEPLOYER_URL, INGESTION_INSECURE, INGESTION_DEVELOPMENT,
INGESTION_RETRY_MODE and INGESTION_RETRY_MAX_TIME.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			// stdout only carries command results.
			a.log, err = logger.NewWithOutput(cfg.Development, "stderr")
			if err != nil {
				return err
			}
			a.lib, err = sdk.NewWithLogger(cfg, a.log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.lib == nil {
				return nil
			}
			return a.lib.Close()
		},
	}

	rootCmd.AddCommand(
		newValidateCommand(a),
		newDeployCommand(a),
		newMappingCommand(a),
	)
	return rootCmd
}

func Execute() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
