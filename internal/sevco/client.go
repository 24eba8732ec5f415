package sevco

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Sevco management API.
	DefaultBaseURL = "https://api.sev.co"

	// TargetOrgHeader selects which organization a multi-org token acts on.
	TargetOrgHeader = "X-Sevco-Target-Org"

	defaultTimeout = 120 * time.Second
	maxBodySize    = 8 << 20 // 8 MiB
)

// Client talks to the Sevco management API. Token is sent verbatim in the
// Authorization header (it already carries its scheme prefix, e.g.
// "Token AAA-BBB"). TargetOrg, when set, is attached to every request.
type Client struct {
	BaseURL   string
	Token     string
	TargetOrg string
	HTTP      *http.Client
}

// New creates a Sevco API client. baseURL and token are required; targetOrg
// may be empty for tokens scoped to a single organization.
func New(baseURL, token, targetOrg string) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	token = strings.TrimSpace(token)

	if base == "" {
		return nil, errors.New("sevco base URL is required")
	}
	if token == "" {
		return nil, errors.New("sevco api token is required")
	}

	return &Client{
		BaseURL:   base,
		Token:     token,
		TargetOrg: strings.TrimSpace(targetOrg),
		HTTP:      &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (c *Client) ensureClient() error {
	if c.BaseURL == "" {
		return errors.New("sevco base URL is required")
	}
	if c.Token == "" {
		return errors.New("sevco api token is required")
	}
	if c.HTTP == nil {
		return errors.New("sevco http client is not configured")
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(strings.TrimRight(c.BaseURL, "/"))
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	u.Fragment = ""
	return u.String(), nil
}

// do issues one request and returns the response body. Every request gets the
// same header decoration; the target-org header is present iff TargetOrg is
// set. Non-2xx statuses come back as *APIError with the body untouched.
// There is no retry: every call either succeeds or fails exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}

	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.Token)
	if c.TargetOrg != "" {
		req.Header.Set(TargetOrgHeader, c.TargetOrg)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "sevcoctl")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}
	return body, nil
}

// itemsEnvelope is the list-response wrapper used by every collection
// endpoint. Items stay raw; order is the server's.
type itemsEnvelope struct {
	Items []json.RawMessage `json:"items"`
}

func (c *Client) getItems(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	var envelope itemsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}
