package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sevco-tools/sevcoctl/internal/sevco"
)

const defaultHTTPTimeout = 120 * time.Second

// Config is everything sevcoctl reads from the environment. The API token and
// target org can also arrive as positional arguments; the command layer
// resolves precedence.
type Config struct {
	APIURL      string
	APIToken    string
	TargetOrg   string
	HTTPTimeout time.Duration

	VaultAddr          string
	VaultToken         string
	VaultNamespace     string
	VaultTLSSkipVerify bool
	VaultCACertPEM     string
}

type LoadOptions struct {
	RequireToken bool
}

func Load() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireToken: true})
}

func LoadOptionalToken() (Config, error) {
	return LoadWithOptions(LoadOptions{RequireToken: false})
}

func LoadWithOptions(opts LoadOptions) (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		APIURL:             getenvDefault("SEVCO_API_URL", sevco.DefaultBaseURL),
		APIToken:           strings.TrimSpace(os.Getenv("SEVCO_API_TOKEN")),
		TargetOrg:          strings.TrimSpace(os.Getenv("SEVCO_TARGET_ORG")),
		HTTPTimeout:        defaultHTTPTimeout,
		VaultAddr:          strings.TrimSpace(os.Getenv("VAULT_ADDR")),
		VaultToken:         strings.TrimSpace(os.Getenv("VAULT_TOKEN")),
		VaultNamespace:     strings.TrimSpace(os.Getenv("VAULT_NAMESPACE")),
		VaultTLSSkipVerify: getenvBoolDefault("VAULT_TLS_SKIP_VERIFY", false),
		VaultCACertPEM:     os.Getenv("VAULT_CACERT_PEM"),
	}

	if v := os.Getenv("SEVCO_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}

	if opts.RequireToken && cfg.APIToken == "" {
		return cfg, errors.New("SEVCO_API_TOKEN is required")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(key string, def bool) bool {
	switch strings.TrimSpace(os.Getenv(key)) {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
