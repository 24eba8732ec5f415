package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sevco-tools/sevcoctl/internal/sevco"
	"github.com/spf13/cobra"
)

var (
	createAccessPlatform    string
	createAccessSchema      string
	createAccessAuth        []string
	createAccessAuthVault   string
	createAccessConnect     []string
	createAccessSettings    []string
	createAccessLabel       string
	createAccessContact     string
	createAccessConsoleLink string
	createAccessRunner      string
	createAccessDisabled    bool
)

var createAccessConfigCmd = &cobra.Command{
	Use:   "create-access-config [token] [target-org]",
	Short: "Create an access configuration (how to connect to a source).",
	Long: "Creates a new access configuration. Parameter groups are free-form key=value\n" +
		"pairs validated server-side against the schema named by --schema. The auth\n" +
		"group can be read from Vault KV v2 with --auth-vault to keep credentials off\n" +
		"the command line. Every invocation creates a new config; creates are not\n" +
		"idempotent.",
	Args: positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		auth, err := resolveAuthGroup(ctx, cfg, createAccessAuthVault, createAccessAuth)
		if err != nil {
			return err
		}
		connect, err := parseParams(createAccessConnect)
		if err != nil {
			return err
		}
		settings, err := parseParams(createAccessSettings)
		if err != nil {
			return err
		}

		created, err := client.CreateAccessConfig(ctx, createAccessPlatform, sevco.CreateAccessConfigRequest{
			ConfigSet: sevco.ConfigSet{
				SchemaID: createAccessSchema,
				Auth:     auth,
				Connect:  connect,
				Settings: settings,
			},
			Enabled:             !createAccessDisabled,
			Label:               optionalFlag(createAccessLabel),
			ContactInfo:         optionalFlag(createAccessContact),
			ExternalConsoleLink: optionalFlag(createAccessConsoleLink),
			RunnerID:            optionalFlag(createAccessRunner),
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, created)
	},
}

var (
	createIntegrationPlatform     string
	createIntegrationIntegration  string
	createIntegrationAccessConfig string
	createIntegrationSchema       string
	createIntegrationSettings     []string
	createIntegrationLabel        string
	createIntegrationDisabled     bool
)

var createIntegrationConfigCmd = &cobra.Command{
	Use:   "create-integration-config [token] [target-org]",
	Short: "Create an integration configuration (what to collect) bound to an access config.",
	Args:  positionalArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd, args)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		settings, err := parseParams(createIntegrationSettings)
		if err != nil {
			return err
		}

		created, err := client.CreateIntegrationConfig(ctx, createIntegrationPlatform, createIntegrationIntegration, sevco.CreateIntegrationConfigRequest{
			AccessConfigID: createIntegrationAccessConfig,
			ConfigSet: sevco.ConfigSet{
				SchemaID: createIntegrationSchema,
				Settings: settings,
			},
			Enabled: !createIntegrationDisabled,
			Label:   optionalFlag(createIntegrationLabel),
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, created)
	},
}

func init() {
	flags := createAccessConfigCmd.Flags()
	flags.StringVar(&createAccessPlatform, "platform", "", "Integration platform id")
	flags.StringVar(&createAccessSchema, "schema", "", "Access schema id the config set conforms to")
	flags.StringArrayVar(&createAccessAuth, "auth", nil, "Auth group parameter, key=value (repeatable)")
	flags.StringVar(&createAccessAuthVault, "auth-vault", "", "Vault KV v2 reference <mount>/<path> for the auth group")
	flags.StringArrayVar(&createAccessConnect, "connect", nil, "Connect group parameter, key=value (repeatable)")
	flags.StringArrayVar(&createAccessSettings, "settings", nil, "Settings group parameter, key=value (repeatable)")
	flags.StringVar(&createAccessLabel, "label", "", "Human-readable label")
	flags.StringVar(&createAccessContact, "contact", "", "Contact info for this connection")
	flags.StringVar(&createAccessConsoleLink, "console-link", "", "Link to the source's own console")
	flags.StringVar(&createAccessRunner, "runner", "", "Runner id for on-prem collection")
	flags.BoolVar(&createAccessDisabled, "disabled", false, "Create the config disabled")
	_ = createAccessConfigCmd.MarkFlagRequired("platform")
	_ = createAccessConfigCmd.MarkFlagRequired("schema")

	flags = createIntegrationConfigCmd.Flags()
	flags.StringVar(&createIntegrationPlatform, "platform", "", "Integration platform id")
	flags.StringVar(&createIntegrationIntegration, "integration", "", "Integration id within the platform")
	flags.StringVar(&createIntegrationAccessConfig, "access-config", "", "Id of an existing access config to bind to")
	flags.StringVar(&createIntegrationSchema, "schema", "", "Integration schema id the config set conforms to")
	flags.StringArrayVar(&createIntegrationSettings, "settings", nil, "Settings group parameter, key=value (repeatable)")
	flags.StringVar(&createIntegrationLabel, "label", "", "Human-readable label")
	flags.BoolVar(&createIntegrationDisabled, "disabled", false, "Create the config disabled")
	_ = createIntegrationConfigCmd.MarkFlagRequired("platform")
	_ = createIntegrationConfigCmd.MarkFlagRequired("integration")
	_ = createIntegrationConfigCmd.MarkFlagRequired("access-config")
	_ = createIntegrationConfigCmd.MarkFlagRequired("schema")
}
