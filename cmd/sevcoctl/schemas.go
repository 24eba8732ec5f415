package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var accessSchemasPlatform string

var accessSchemasCmd = &cobra.Command{
	Use:   "access-schemas [token] [target-org]",
	Short: "List the JSON-Schemas a platform accepts for access configs.",
	Args:  positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		schemas, err := client.ListAccessSchemas(ctx, accessSchemasPlatform)
		if err != nil {
			return err
		}
		return printJSON(cmd, schemas)
	},
}

var (
	integrationSchemasPlatform    string
	integrationSchemasIntegration string
)

var integrationSchemasCmd = &cobra.Command{
	Use:   "integration-schemas [token] [target-org]",
	Short: "List the JSON-Schemas an integration accepts for integration configs.",
	Args:  positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		schemas, err := client.ListIntegrationSchemas(ctx, integrationSchemasPlatform, integrationSchemasIntegration)
		if err != nil {
			return err
		}
		return printJSON(cmd, schemas)
	},
}

func init() {
	accessSchemasCmd.Flags().StringVar(&accessSchemasPlatform, "platform", "", "Integration platform id (e.g. sentinelone)")
	_ = accessSchemasCmd.MarkFlagRequired("platform")

	integrationSchemasCmd.Flags().StringVar(&integrationSchemasPlatform, "platform", "", "Integration platform id")
	integrationSchemasCmd.Flags().StringVar(&integrationSchemasIntegration, "integration", "", "Integration id within the platform")
	_ = integrationSchemasCmd.MarkFlagRequired("platform")
	_ = integrationSchemasCmd.MarkFlagRequired("integration")
}
