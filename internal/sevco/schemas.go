package sevco

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ListAccessSchemas returns the JSON-Schema documents describing the access
// configs a platform accepts, in server order.
func (c *Client) ListAccessSchemas(ctx context.Context, platformID string) ([]Schema, error) {
	platformID = strings.TrimSpace(platformID)
	if platformID == "" {
		return nil, errors.New("platform id is required")
	}

	path := fmt.Sprintf("/v3/integration-platform/%s/access/schema", url.PathEscape(platformID))
	items, err := c.getItems(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	out := make([]Schema, 0, len(items))
	for _, item := range items {
		out = append(out, Schema(item))
	}
	return out, nil
}

// ListIntegrationSchemas is ListAccessSchemas scoped to one integration of the
// platform; the returned schemas describe integration-config settings.
func (c *Client) ListIntegrationSchemas(ctx context.Context, platformID, integrationID string) ([]Schema, error) {
	platformID = strings.TrimSpace(platformID)
	integrationID = strings.TrimSpace(integrationID)
	if platformID == "" {
		return nil, errors.New("platform id is required")
	}
	if integrationID == "" {
		return nil, errors.New("integration id is required")
	}

	path := fmt.Sprintf("/v3/integration-platform/%s/integration/%s/schema",
		url.PathEscape(platformID), url.PathEscape(integrationID))
	items, err := c.getItems(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	out := make([]Schema, 0, len(items))
	for _, item := range items {
		out = append(out, Schema(item))
	}
	return out, nil
}
