package secrets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func writeJSON(t *testing.T, w http.ResponseWriter, payload map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestReadKVReturnsSecretData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/sevco/sentinelone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("X-Vault-Token") != "s.token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		writeJSON(t, w, map[string]any{
			"data": map[string]any{
				"data":     map[string]any{"api_key": "foo"},
				"metadata": map[string]any{"version": 3},
			},
		})
	}))
	defer server.Close()

	client, err := New(Options{Address: server.URL, Token: "s.token"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data, err := client.ReadKV(context.Background(), "secret/sevco/sentinelone")
	if err != nil {
		t.Fatalf("ReadKV() error = %v", err)
	}
	if data["api_key"] != "foo" {
		t.Fatalf("data = %v, want api_key=foo", data)
	}
}

func TestReadKVRejectsBareMountRef(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid reference")
	}))
	defer server.Close()

	client, err := New(Options{Address: server.URL, Token: "s.token"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.ReadKV(context.Background(), "secret"); err == nil {
		t.Fatal("expected reference format error")
	}
	if _, err := client.ReadKV(context.Background(), "/secret/"); err == nil {
		t.Fatal("expected reference format error")
	}
}

func TestNewValidatesOptions(t *testing.T) {
	t.Parallel()

	if _, err := New(Options{Token: "s.token"}); err == nil {
		t.Fatal("expected missing address error")
	}
	if _, err := New(Options{Address: "https://vault.example.test"}); err == nil {
		t.Fatal("expected missing token error")
	}
}
