package sevco

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// LatestExecution returns the most recent run record for an integration
// config verbatim. A config that has never run yields ErrNoExecutions, not an
// empty record.
func (c *Client) LatestExecution(ctx context.Context, integrationConfigID string) (Execution, error) {
	integrationConfigID = strings.TrimSpace(integrationConfigID)
	if integrationConfigID == "" {
		return nil, errors.New("integration config id is required")
	}

	query := url.Values{}
	query.Set("context_id", integrationConfigID)
	query.Set("count", "1")
	query.Set("sort_ascending", "false")

	items, err := c.getItems(ctx, "/v1/integration/execution", query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("integration config %s: %w", integrationConfigID, ErrNoExecutions)
	}
	return Execution(items[0]), nil
}
