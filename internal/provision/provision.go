// Package provision sequences the dependent API calls that stand up a new
// data-source integration: discover access schemas, create an access config,
// discover integration schemas, create an integration config bound to the new
// access config, then look up its latest execution.
package provision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sevco-tools/sevcoctl/internal/sevco"
)

// Plan is the operator's input to one provisioning run. Auth, Connect, and
// Settings are the literal parameter groups for the chosen schemas.
type Plan struct {
	PlatformID    string
	IntegrationID string

	AccessSchemaID      string
	Auth                map[string]any
	Connect             map[string]any
	AccessLabel         string
	ContactInfo         string
	ExternalConsoleLink string
	RunnerID            string
	AccessEnabled       bool

	IntegrationSchemaID string
	Settings            map[string]any
	IntegrationLabel    string
	IntegrationEnabled  bool
}

// Result collects each step's output. Execution is nil when the freshly
// created integration config has not run yet.
type Result struct {
	AccessSchemas      []sevco.Schema           `json:"access_schemas"`
	AccessConfig       *sevco.AccessConfig      `json:"access_config"`
	IntegrationSchemas []sevco.Schema           `json:"integration_schemas"`
	IntegrationConfig  *sevco.IntegrationConfig `json:"integration_config"`
	Execution          sevco.Execution          `json:"execution,omitempty"`
}

type Workflow struct {
	Client *sevco.Client
	Logger *slog.Logger
}

func NewWorkflow(client *sevco.Client, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{Client: client, Logger: logger}
}

func (p Plan) validate() error {
	if strings.TrimSpace(p.PlatformID) == "" {
		return errors.New("platform id is required")
	}
	if strings.TrimSpace(p.IntegrationID) == "" {
		return errors.New("integration id is required")
	}
	if strings.TrimSpace(p.AccessSchemaID) == "" {
		return errors.New("access schema id is required")
	}
	if strings.TrimSpace(p.IntegrationSchemaID) == "" {
		return errors.New("integration schema id is required")
	}
	return nil
}

// Run executes the provisioning chain strictly in order. Each step's output
// feeds the next and the first failure aborts the remainder; nothing created
// so far is rolled back (creates are not idempotent and the server owns the
// records). A missing execution on the final step is not a failure: a config
// created moments ago has usually never run.
func (w *Workflow) Run(ctx context.Context, plan Plan) (*Result, error) {
	if w.Client == nil {
		return nil, errors.New("workflow client is not configured")
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{}

	accessSchemas, err := w.Client.ListAccessSchemas(ctx, plan.PlatformID)
	if err != nil {
		return nil, fmt.Errorf("list access schemas: %w", err)
	}
	result.AccessSchemas = accessSchemas
	logger.Info("discovered access schemas",
		"platform_id", plan.PlatformID, "count", len(accessSchemas), "schema_ids", schemaIDs(accessSchemas))
	if err := ensureSchemaOffered(accessSchemas, plan.AccessSchemaID, "access"); err != nil {
		return nil, err
	}

	accessConfig, err := w.Client.CreateAccessConfig(ctx, plan.PlatformID, sevco.CreateAccessConfigRequest{
		ConfigSet: sevco.ConfigSet{
			SchemaID: plan.AccessSchemaID,
			Auth:     plan.Auth,
			Connect:  plan.Connect,
		},
		Enabled:             plan.AccessEnabled,
		Label:               optional(defaultLabel(plan.AccessLabel)),
		ContactInfo:         optional(plan.ContactInfo),
		ExternalConsoleLink: optional(plan.ExternalConsoleLink),
		RunnerID:            optional(plan.RunnerID),
	})
	if err != nil {
		return nil, fmt.Errorf("create access config: %w", err)
	}
	result.AccessConfig = accessConfig
	logger.Info("created access config",
		"platform_id", accessConfig.PlatformID, "access_config_id", accessConfig.ID, "org_id", accessConfig.OrgID)

	integrationSchemas, err := w.Client.ListIntegrationSchemas(ctx, plan.PlatformID, plan.IntegrationID)
	if err != nil {
		return nil, fmt.Errorf("list integration schemas: %w", err)
	}
	result.IntegrationSchemas = integrationSchemas
	logger.Info("discovered integration schemas",
		"integration_id", plan.IntegrationID, "count", len(integrationSchemas), "schema_ids", schemaIDs(integrationSchemas))
	if err := ensureSchemaOffered(integrationSchemas, plan.IntegrationSchemaID, "integration"); err != nil {
		return nil, err
	}

	integrationConfig, err := w.Client.CreateIntegrationConfig(ctx, plan.PlatformID, plan.IntegrationID, sevco.CreateIntegrationConfigRequest{
		AccessConfigID: accessConfig.ID,
		ConfigSet: sevco.ConfigSet{
			SchemaID: plan.IntegrationSchemaID,
			Settings: plan.Settings,
		},
		Enabled: plan.IntegrationEnabled,
		Label:   optional(defaultLabel(plan.IntegrationLabel)),
	})
	if err != nil {
		return nil, fmt.Errorf("create integration config: %w", err)
	}
	result.IntegrationConfig = integrationConfig
	logger.Info("created integration config",
		"integration_config_id", integrationConfig.ID, "access_config_id", integrationConfig.AccessConfigID)

	execution, err := w.Client.LatestExecution(ctx, integrationConfig.ID)
	switch {
	case errors.Is(err, sevco.ErrNoExecutions):
		logger.Info("integration config has no executions yet", "integration_config_id", integrationConfig.ID)
	case err != nil:
		return nil, fmt.Errorf("latest execution: %w", err)
	default:
		result.Execution = execution
		logger.Info("fetched latest execution", "integration_config_id", integrationConfig.ID)
	}

	return result, nil
}

// schemaIDs peeks at each opaque schema document's id for logging and the
// offered-schema check. Everything else in the document stays unparsed.
func schemaIDs(schemas []sevco.Schema) []string {
	ids := make([]string, 0, len(schemas))
	for _, schema := range schemas {
		var peek struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(schema, &peek); err != nil || peek.ID == "" {
			continue
		}
		ids = append(ids, peek.ID)
	}
	return ids
}

func ensureSchemaOffered(schemas []sevco.Schema, schemaID, kind string) error {
	for _, id := range schemaIDs(schemas) {
		if id == schemaID {
			return nil
		}
	}
	return fmt.Errorf("%s schema %q is not offered by the platform (offered: %s)",
		kind, schemaID, strings.Join(schemaIDs(schemas), ", "))
}

func defaultLabel(label string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return "sevcoctl-" + uuid.NewString()[:8]
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
