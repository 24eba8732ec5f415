package config

import (
	"testing"
	"time"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	t.Setenv("SEVCO_API_URL", "")
	t.Setenv("SEVCO_API_TOKEN", "")
	t.Setenv("SEVCO_HTTP_TIMEOUT", "")

	cfg, err := LoadWithOptions(LoadOptions{RequireToken: false})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if cfg.APIURL != "https://api.sev.co" {
		t.Fatalf("APIURL = %q, want production default", cfg.APIURL)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("HTTPTimeout = %s, want %s", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
}

func TestLoadWithOptions_RequiresToken(t *testing.T) {
	t.Setenv("SEVCO_API_TOKEN", "")

	if _, err := LoadWithOptions(LoadOptions{RequireToken: true}); err == nil {
		t.Fatal("expected missing SEVCO_API_TOKEN error")
	}
}

func TestLoadWithOptions_ParsesTimeout(t *testing.T) {
	t.Setenv("SEVCO_API_TOKEN", "Token AAA")
	t.Setenv("SEVCO_HTTP_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPTimeout != 45*time.Second {
		t.Fatalf("HTTPTimeout = %s, want 45s", cfg.HTTPTimeout)
	}
	if cfg.APIToken != "Token AAA" {
		t.Fatalf("APIToken = %q", cfg.APIToken)
	}
}

func TestLoadWithOptions_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("SEVCO_API_TOKEN", "Token AAA")
	t.Setenv("SEVCO_HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("HTTPTimeout = %s, want default on parse failure", cfg.HTTPTimeout)
	}
}
