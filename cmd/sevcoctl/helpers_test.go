package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{
		"api_key=foo",
		"insecure=true",
		"count=3",
		"url=https://example/",
		`extra={"nested":1}`,
	})
	if err != nil {
		t.Fatalf("parseParams error: %v", err)
	}

	if params["api_key"] != "foo" {
		t.Fatalf("api_key = %v", params["api_key"])
	}
	if params["insecure"] != true {
		t.Fatalf("insecure = %v (%T), want boolean true", params["insecure"], params["insecure"])
	}
	if params["count"] != float64(3) {
		t.Fatalf("count = %v (%T), want number 3", params["count"], params["count"])
	}
	if params["url"] != "https://example/" {
		t.Fatalf("url = %v", params["url"])
	}
	nested, ok := params["extra"].(map[string]any)
	if !ok || nested["nested"] != float64(1) {
		t.Fatalf("extra = %v", params["extra"])
	}
}

func TestParseParamsRejectsMalformedPairs(t *testing.T) {
	t.Parallel()

	if _, err := parseParams([]string{"no-equals"}); err == nil {
		t.Fatal("expected error for a pair without =")
	}
	if _, err := parseParams([]string{"=value"}); err == nil {
		t.Fatal("expected error for an empty key")
	}
}

func TestParseParamsEmptyIsNil(t *testing.T) {
	t.Parallel()

	params, err := parseParams(nil)
	if err != nil {
		t.Fatalf("parseParams error: %v", err)
	}
	if params != nil {
		t.Fatalf("params = %v, want nil so the group is omitted from JSON", params)
	}
}

func TestNewClientTokenAndOrgPrecedence(t *testing.T) {
	t.Setenv("SEVCO_API_TOKEN", "Token FROM-ENV")
	t.Setenv("SEVCO_TARGET_ORG", "env-org")
	t.Setenv("SEVCO_API_URL", "https://api.example.test")

	cmd := &cobra.Command{}

	client, _, err := newClient(cmd, nil)
	if err != nil {
		t.Fatalf("newClient error: %v", err)
	}
	if client.Token != "Token FROM-ENV" || client.TargetOrg != "env-org" {
		t.Fatalf("env fallback not applied: token=%q org=%q", client.Token, client.TargetOrg)
	}

	client, _, err = newClient(cmd, []string{"Token FROM-ARG", "arg-org"})
	if err != nil {
		t.Fatalf("newClient error: %v", err)
	}
	if client.Token != "Token FROM-ARG" || client.TargetOrg != "arg-org" {
		t.Fatalf("positional args should win: token=%q org=%q", client.Token, client.TargetOrg)
	}
}

func TestNewClientMissingTokenIsUsageFailure(t *testing.T) {
	t.Setenv("SEVCO_API_TOKEN", "")
	t.Setenv("SEVCO_TARGET_ORG", "")

	// stdin is not a terminal under go test, so no prompt happens.
	if _, _, err := newClient(&cobra.Command{}, nil); err == nil {
		t.Fatal("expected missing-token error")
	}
}
