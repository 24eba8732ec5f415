package secrets

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	vaultapi "github.com/hashicorp/vault/api"
)

// Options configures the Vault reader. Only token auth is supported; the
// secrets this tool needs are read once at provisioning time.
type Options struct {
	Address       string
	Namespace     string
	Token         string
	TLSSkipVerify bool
	TLSCACertPEM  string
}

// Client reads secret parameter groups from Vault KV v2 so credentials never
// have to be passed on the command line.
type Client struct {
	client *vaultapi.Client
}

func New(opts Options) (*Client, error) {
	address := strings.TrimSpace(opts.Address)
	if address == "" {
		return nil, errors.New("vault address is required")
	}
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return nil, errors.New("vault token is required")
	}

	cfg := vaultapi.DefaultConfig()
	cfg.Address = address
	cfg.HttpClient = &http.Client{
		Timeout:   60 * time.Second,
		Transport: buildHTTPTransport(opts.TLSSkipVerify, strings.TrimSpace(opts.TLSCACertPEM)),
	}

	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault client setup: %w", err)
	}
	if namespace := strings.TrimSpace(opts.Namespace); namespace != "" {
		client.SetNamespace(namespace)
	}
	client.SetToken(token)

	return &Client{client: client}, nil
}

// ReadKV reads one KV v2 secret. ref is "<mount>/<path...>", e.g.
// "secret/sevco/sentinelone". The returned map is the secret's data block,
// shaped to drop straight into a ConfigSet parameter group.
func (c *Client) ReadKV(ctx context.Context, ref string) (map[string]any, error) {
	mount, secretPath, err := splitRef(ref)
	if err != nil {
		return nil, err
	}

	secret, err := c.client.KVv2(mount).Get(ctx, secretPath)
	if err != nil {
		return nil, fmt.Errorf("vault read %s: %w", ref, err)
	}
	if secret == nil || len(secret.Data) == 0 {
		return nil, fmt.Errorf("vault secret %s has no data", ref)
	}
	return secret.Data, nil
}

func splitRef(ref string) (mount, secretPath string, err error) {
	ref = strings.Trim(strings.TrimSpace(ref), "/")
	mount, secretPath, found := strings.Cut(ref, "/")
	if !found || mount == "" || secretPath == "" {
		return "", "", fmt.Errorf("vault secret reference %q must be <mount>/<path>", ref)
	}
	return mount, secretPath, nil
}

func buildHTTPTransport(skipVerify bool, caCertPEM string) http.RoundTripper {
	base, _ := http.DefaultTransport.(*http.Transport)
	if base == nil {
		return http.DefaultTransport
	}
	transport := base.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	transport.TLSClientConfig.InsecureSkipVerify = skipVerify
	if caCertPEM != "" {
		pool := x509.NewCertPool()
		if pool.AppendCertsFromPEM([]byte(caCertPEM)) {
			transport.TLSClientConfig.RootCAs = pool
		}
	}
	return transport
}
