package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sevco-tools/sevcoctl/internal/logging"
	"github.com/sevco-tools/sevcoctl/internal/provision"
	"github.com/spf13/cobra"
)

var (
	provisionPlatform          string
	provisionIntegration       string
	provisionAccessSchema      string
	provisionAuth              []string
	provisionAuthVault         string
	provisionConnect           []string
	provisionAccessLabel       string
	provisionContact           string
	provisionConsoleLink       string
	provisionRunner            string
	provisionIntegrationSchema string
	provisionSettings          []string
	provisionIntegrationLabel  string
	provisionDisabled          bool
)

var provisionCmd = &cobra.Command{
	Use:   "provision [token] [target-org]",
	Short: "Provision a data source end to end: access config, integration config, first execution.",
	Long: "Runs the full provisioning chain in order: discover access schemas, create an\n" +
		"access config, discover integration schemas, create an integration config\n" +
		"referencing the new access config, and fetch its latest execution. The chain\n" +
		"is strictly sequential; the first failure aborts the remaining steps and\n" +
		"nothing already created is rolled back.",
	Args: positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.BootstrapFromEnv(cmd.ErrOrStderr(), cmd.CommandPath())
		if err != nil {
			return err
		}

		client, cfg, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		auth, err := resolveAuthGroup(ctx, cfg, provisionAuthVault, provisionAuth)
		if err != nil {
			return err
		}
		connect, err := parseParams(provisionConnect)
		if err != nil {
			return err
		}
		settings, err := parseParams(provisionSettings)
		if err != nil {
			return err
		}

		workflow := provision.NewWorkflow(client, logger)
		result, err := workflow.Run(ctx, provision.Plan{
			PlatformID:          provisionPlatform,
			IntegrationID:       provisionIntegration,
			AccessSchemaID:      provisionAccessSchema,
			Auth:                auth,
			Connect:             connect,
			AccessLabel:         provisionAccessLabel,
			ContactInfo:         provisionContact,
			ExternalConsoleLink: provisionConsoleLink,
			RunnerID:            provisionRunner,
			AccessEnabled:       !provisionDisabled,
			IntegrationSchemaID: provisionIntegrationSchema,
			Settings:            settings,
			IntegrationLabel:    provisionIntegrationLabel,
			IntegrationEnabled:  !provisionDisabled,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return &exitError{code: 130, err: err, silent: true}
			}
			return err
		}
		return printJSON(cmd, result)
	},
}

func init() {
	flags := provisionCmd.Flags()
	flags.StringVar(&provisionPlatform, "platform", "", "Integration platform id (e.g. sentinelone)")
	flags.StringVar(&provisionIntegration, "integration", "", "Integration id within the platform")
	flags.StringVar(&provisionAccessSchema, "access-schema", "", "Access schema id for the connection config set")
	flags.StringArrayVar(&provisionAuth, "auth", nil, "Auth group parameter, key=value (repeatable)")
	flags.StringVar(&provisionAuthVault, "auth-vault", "", "Vault KV v2 reference <mount>/<path> for the auth group")
	flags.StringArrayVar(&provisionConnect, "connect", nil, "Connect group parameter, key=value (repeatable)")
	flags.StringVar(&provisionAccessLabel, "access-label", "", "Label for the access config (generated when empty)")
	flags.StringVar(&provisionContact, "contact", "", "Contact info for the access config")
	flags.StringVar(&provisionConsoleLink, "console-link", "", "Link to the source's own console")
	flags.StringVar(&provisionRunner, "runner", "", "Runner id for on-prem collection")
	flags.StringVar(&provisionIntegrationSchema, "integration-schema", "", "Integration schema id for the collection config set")
	flags.StringArrayVar(&provisionSettings, "settings", nil, "Settings group parameter, key=value (repeatable)")
	flags.StringVar(&provisionIntegrationLabel, "integration-label", "", "Label for the integration config (generated when empty)")
	flags.BoolVar(&provisionDisabled, "disabled", false, "Create both configs disabled")
	_ = provisionCmd.MarkFlagRequired("platform")
	_ = provisionCmd.MarkFlagRequired("integration")
	_ = provisionCmd.MarkFlagRequired("access-schema")
	_ = provisionCmd.MarkFlagRequired("integration-schema")
}
