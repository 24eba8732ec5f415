package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "sevcoctl",
	Short: "Provision Sevco data-source integrations from the command line.",
	Long: "sevcoctl registers access configurations (how to connect to a source) and\n" +
		"integration configurations (what to collect) against the Sevco management API,\n" +
		"and inspects their execution history.\n\n" +
		"Every subcommand accepts an API token as its first positional argument and an\n" +
		"optional target organization as the second. Tokens come from\n" +
		"https://my.sev.co/<org>/profile/tokens and include their scheme prefix,\n" +
		"e.g. \"Token AAAAAAA-BBBBBBB\".",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(
		accessSchemasCmd,
		integrationSchemasCmd,
		createAccessConfigCmd,
		createIntegrationConfigCmd,
		latestExecutionCmd,
		provisionCmd,
	)
}
