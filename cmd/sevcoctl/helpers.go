package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sevco-tools/sevcoctl/internal/config"
	"github.com/sevco-tools/sevcoctl/internal/secrets"
	"github.com/sevco-tools/sevcoctl/internal/sevco"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// positionalArgs is the shared arity for every subcommand:
// [token] [target-org], both optional when the environment supplies them.
var positionalArgs = cobra.MaximumNArgs(2)

// newClient builds the API client for one invocation. Token precedence:
// positional argument, then SEVCO_API_TOKEN, then an interactive prompt when
// stdin is a terminal. Target org: positional argument, then
// SEVCO_TARGET_ORG, then none.
func newClient(cmd *cobra.Command, args []string) (*sevco.Client, config.Config, error) {
	cfg, err := config.LoadOptionalToken()
	if err != nil {
		return nil, config.Config{}, err
	}

	token := cfg.APIToken
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		token = strings.TrimSpace(args[0])
	}
	if token == "" {
		token, err = promptToken(cmd)
		if err != nil {
			return nil, config.Config{}, err
		}
	}
	if token == "" {
		return nil, config.Config{}, errors.New("api token is required (pass it as the first argument or set SEVCO_API_TOKEN)")
	}

	targetOrg := cfg.TargetOrg
	if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
		targetOrg = strings.TrimSpace(args[1])
	}

	client, err := sevco.New(cfg.APIURL, token, targetOrg)
	if err != nil {
		return nil, config.Config{}, err
	}
	client.HTTP.Timeout = cfg.HTTPTimeout
	return client, cfg, nil
}

func promptToken(cmd *cobra.Command) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	cmd.Print("API token: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// parseParams turns repeated key=value flags into one schema parameter group.
// Values that parse as JSON keep their type (numbers, booleans, objects);
// anything else stays a string.
func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("parameter %q must be key=value", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			out[key] = parsed
		} else {
			out[key] = value
		}
	}
	return out, nil
}

// resolveAuthGroup merges the Vault-sourced auth secret (when --auth-vault is
// set) with explicit --auth pairs; explicit pairs win.
func resolveAuthGroup(ctx context.Context, cfg config.Config, vaultRef string, pairs []string) (map[string]any, error) {
	explicit, err := parseParams(pairs)
	if err != nil {
		return nil, err
	}

	vaultRef = strings.TrimSpace(vaultRef)
	if vaultRef == "" {
		return explicit, nil
	}

	vault, err := secrets.New(secrets.Options{
		Address:       cfg.VaultAddr,
		Namespace:     cfg.VaultNamespace,
		Token:         cfg.VaultToken,
		TLSSkipVerify: cfg.VaultTLSSkipVerify,
		TLSCACertPEM:  cfg.VaultCACertPEM,
	})
	if err != nil {
		return nil, err
	}
	auth, err := vault.ReadKV(ctx, vaultRef)
	if err != nil {
		return nil, err
	}
	for key, value := range explicit {
		auth[key] = value
	}
	return auth, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

func optionalFlag(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
