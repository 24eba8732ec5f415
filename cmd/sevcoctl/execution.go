package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var latestExecutionConfigID string

var latestExecutionCmd = &cobra.Command{
	Use:   "latest-execution [token] [target-org]",
	Short: "Fetch the most recent run record for an integration config.",
	Args:  positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		execution, err := client.LatestExecution(ctx, latestExecutionConfigID)
		if err != nil {
			return err
		}
		return printJSON(cmd, execution)
	},
}

func init() {
	latestExecutionCmd.Flags().StringVar(&latestExecutionConfigID, "integration-config", "", "Integration config id to look up")
	_ = latestExecutionCmd.MarkFlagRequired("integration-config")
}
