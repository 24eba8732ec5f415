package sevco

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CreateAccessConfig registers connection credentials with the platform and
// returns the server's record. Not idempotent: every call creates a new
// access config.
func (c *Client) CreateAccessConfig(ctx context.Context, platformID string, req CreateAccessConfigRequest) (*AccessConfig, error) {
	platformID = strings.TrimSpace(platformID)
	if platformID == "" {
		return nil, errors.New("platform id is required")
	}

	path := fmt.Sprintf("/v3/integration-platform/%s/access/config", url.PathEscape(platformID))
	body, err := c.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}
	return decodeAccessConfig(body)
}

// CreateIntegrationConfig registers what to collect. The request must
// reference an access config the server already knows; the id is passed
// through opaquely and enforced server-side. Not idempotent.
func (c *Client) CreateIntegrationConfig(ctx context.Context, platformID, integrationID string, req CreateIntegrationConfigRequest) (*IntegrationConfig, error) {
	platformID = strings.TrimSpace(platformID)
	integrationID = strings.TrimSpace(integrationID)
	if platformID == "" {
		return nil, errors.New("platform id is required")
	}
	if integrationID == "" {
		return nil, errors.New("integration id is required")
	}

	path := fmt.Sprintf("/v3/integration-platform/%s/integration/%s/config",
		url.PathEscape(platformID), url.PathEscape(integrationID))
	body, err := c.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}
	return decodeIntegrationConfig(body)
}

type accessConfigPayload struct {
	OrgID                *string    `json:"org_id"`
	PlatformID           *string    `json:"platform_id"`
	ID                   *string    `json:"id"`
	ConfigSet            *ConfigSet `json:"config_set"`
	Enabled              *bool      `json:"enabled"`
	CreatedTimestamp     *time.Time `json:"created_timestamp"`
	LastUpdatedTimestamp *time.Time `json:"last_updated_timestamp"`
	RunnerID             *string    `json:"runner_id"`
	Label                *string    `json:"label"`
	ContactInfo          *string    `json:"contact_info"`
	ExternalConsoleLink  *string    `json:"external_console_link"`
}

func decodeAccessConfig(body []byte) (*AccessConfig, error) {
	var payload accessConfigPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode access config response: %w", err)
	}

	const record = "access config"
	if payload.OrgID == nil {
		return nil, &MissingFieldError{Record: record, Field: "org_id"}
	}
	if payload.PlatformID == nil {
		return nil, &MissingFieldError{Record: record, Field: "platform_id"}
	}
	if payload.ID == nil {
		return nil, &MissingFieldError{Record: record, Field: "id"}
	}
	if payload.ConfigSet == nil {
		return nil, &MissingFieldError{Record: record, Field: "config_set"}
	}
	if payload.Enabled == nil {
		return nil, &MissingFieldError{Record: record, Field: "enabled"}
	}
	if payload.CreatedTimestamp == nil {
		return nil, &MissingFieldError{Record: record, Field: "created_timestamp"}
	}
	if payload.LastUpdatedTimestamp == nil {
		return nil, &MissingFieldError{Record: record, Field: "last_updated_timestamp"}
	}

	return &AccessConfig{
		OrgID:                *payload.OrgID,
		PlatformID:           *payload.PlatformID,
		ID:                   *payload.ID,
		ConfigSet:            *payload.ConfigSet,
		Enabled:              *payload.Enabled,
		CreatedTimestamp:     *payload.CreatedTimestamp,
		LastUpdatedTimestamp: *payload.LastUpdatedTimestamp,
		RunnerID:             payload.RunnerID,
		Label:                payload.Label,
		ContactInfo:          payload.ContactInfo,
		ExternalConsoleLink:  payload.ExternalConsoleLink,
	}, nil
}

type integrationConfigPayload struct {
	OrgID                *string    `json:"org_id"`
	PlatformID           *string    `json:"platform_id"`
	IntegrationID        *string    `json:"integration_id"`
	ID                   *string    `json:"id"`
	AccessConfigID       *string    `json:"access_config_id"`
	ConfigSet            *ConfigSet `json:"config_set"`
	Enabled              *bool      `json:"enabled"`
	CreatedTimestamp     *time.Time `json:"created_timestamp"`
	LastUpdatedTimestamp *time.Time `json:"last_updated_timestamp"`
	Label                *string    `json:"label"`
}

func decodeIntegrationConfig(body []byte) (*IntegrationConfig, error) {
	var payload integrationConfigPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode integration config response: %w", err)
	}

	const record = "integration config"
	if payload.OrgID == nil {
		return nil, &MissingFieldError{Record: record, Field: "org_id"}
	}
	if payload.PlatformID == nil {
		return nil, &MissingFieldError{Record: record, Field: "platform_id"}
	}
	if payload.IntegrationID == nil {
		return nil, &MissingFieldError{Record: record, Field: "integration_id"}
	}
	if payload.ID == nil {
		return nil, &MissingFieldError{Record: record, Field: "id"}
	}
	if payload.AccessConfigID == nil {
		return nil, &MissingFieldError{Record: record, Field: "access_config_id"}
	}
	if payload.ConfigSet == nil {
		return nil, &MissingFieldError{Record: record, Field: "config_set"}
	}
	if payload.Enabled == nil {
		return nil, &MissingFieldError{Record: record, Field: "enabled"}
	}
	if payload.CreatedTimestamp == nil {
		return nil, &MissingFieldError{Record: record, Field: "created_timestamp"}
	}
	if payload.LastUpdatedTimestamp == nil {
		return nil, &MissingFieldError{Record: record, Field: "last_updated_timestamp"}
	}

	return &IntegrationConfig{
		OrgID:                *payload.OrgID,
		PlatformID:           *payload.PlatformID,
		IntegrationID:        *payload.IntegrationID,
		ID:                   *payload.ID,
		AccessConfigID:       *payload.AccessConfigID,
		ConfigSet:            *payload.ConfigSet,
		Enabled:              *payload.Enabled,
		CreatedTimestamp:     *payload.CreatedTimestamp,
		LastUpdatedTimestamp: *payload.LastUpdatedTimestamp,
		Label:                payload.Label,
	}, nil
}
