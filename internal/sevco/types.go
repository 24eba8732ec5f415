package sevco

import (
	"encoding/json"
	"time"
)

// ConfigSet names a JSON-Schema (SchemaID) and carries the parameter groups
// that schema describes. The groups are open mappings; their shape is decided
// at runtime by the schema and validated server-side, never here.
type ConfigSet struct {
	SchemaID string         `json:"schema_id"`
	Auth     map[string]any `json:"auth,omitempty"`
	Connect  map[string]any `json:"connect,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

// CreateAccessConfigRequest describes how to connect to a source: credentials
// and connection parameters plus optional operator-facing metadata.
type CreateAccessConfigRequest struct {
	ConfigSet           ConfigSet `json:"config_set"`
	Enabled             bool      `json:"enabled"`
	Label               *string   `json:"label,omitempty"`
	ContactInfo         *string   `json:"contact_info,omitempty"`
	ExternalConsoleLink *string   `json:"external_console_link,omitempty"`
	RunnerID            *string   `json:"runner_id,omitempty"`
}

// CreateIntegrationConfigRequest describes what to collect. It is meaningless
// without AccessConfigID pointing at an already-created access config.
type CreateIntegrationConfigRequest struct {
	AccessConfigID string    `json:"access_config_id"`
	ConfigSet      ConfigSet `json:"config_set"`
	Enabled        bool      `json:"enabled"`
	Label          *string   `json:"label,omitempty"`
}

// AccessConfig is the server's record of an access configuration. One access
// config can be shared by many integration configs. The client never mutates
// it; it is a snapshot of server state at creation time.
type AccessConfig struct {
	OrgID                string    `json:"org_id"`
	PlatformID           string    `json:"platform_id"`
	ID                   string    `json:"id"`
	ConfigSet            ConfigSet `json:"config_set"`
	Enabled              bool      `json:"enabled"`
	CreatedTimestamp     time.Time `json:"created_timestamp"`
	LastUpdatedTimestamp time.Time `json:"last_updated_timestamp"`
	RunnerID             *string   `json:"runner_id,omitempty"`
	Label                *string   `json:"label,omitempty"`
	ContactInfo          *string   `json:"contact_info,omitempty"`
	ExternalConsoleLink  *string   `json:"external_console_link,omitempty"`
}

// IntegrationConfig is the server's record of an integration configuration,
// bound to exactly one access config via AccessConfigID.
type IntegrationConfig struct {
	OrgID                string    `json:"org_id"`
	PlatformID           string    `json:"platform_id"`
	IntegrationID        string    `json:"integration_id"`
	ID                   string    `json:"id"`
	AccessConfigID       string    `json:"access_config_id"`
	ConfigSet            ConfigSet `json:"config_set"`
	Enabled              bool      `json:"enabled"`
	CreatedTimestamp     time.Time `json:"created_timestamp"`
	LastUpdatedTimestamp time.Time `json:"last_updated_timestamp"`
	Label                *string   `json:"label,omitempty"`
}

// Schema is an opaque JSON-Schema document describing the auth/connect/settings
// groups for a named configuration. Passed through verbatim, never parsed.
type Schema = json.RawMessage

// Execution is an opaque run record for an integration config.
type Execution = json.RawMessage
