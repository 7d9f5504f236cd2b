package normalizer

import (
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
	kindDate
	kindIngestionType
	kindReference
	kindTags
	kindConnectorConfig
)

func (k fieldKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInt:
		return "integer"
	case kindBool:
		return "boolean"
	case kindDate:
		return "date"
	case kindIngestionType:
		return "ingestion type"
	case kindReference:
		return "entity reference"
	case kindTags:
		return "list of tag labels"
	case kindConnectorConfig:
		return "connector config"
	}
	return "unknown"
}

// field is one row of the request schema: how to coerce a raw value,
// what to use when it is absent, and where to store it.
type field struct {
	name string
	kind fieldKind
	// defaultValue is stored when the key is absent or null. A nil
	// default leaves the field unset.
	defaultValue any
	set          func(req *payloads.IngestionWorkflowRequest, value any)
}

var schema = []field{
	{name: "name", kind: kindString, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.Name = v.(string)
	}},
	{name: "displayName", kind: kindString, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		s := v.(string)
		r.DisplayName = &s
	}},
	{name: "description", kind: kindString, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		s := v.(string)
		r.Description = &s
	}},
	{name: "ingestionType", kind: kindIngestionType, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		t := v.(payloads.IngestionType)
		r.IngestionType = &t
	}},
	{name: "owner", kind: kindReference, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		ref := v.(payloads.EntityReference)
		r.Owner = &ref
	}},
	{name: "tags", kind: kindTags, defaultValue: []payloads.TagLabel{}, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.Tags = v.([]payloads.TagLabel)
	}},
	{name: "forceDeploy", kind: kindBool, defaultValue: false, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.ForceDeploy = v.(bool)
	}},
	{name: "pauseWorkflow", kind: kindBool, defaultValue: false, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.PauseWorkflow = v.(bool)
	}},
	{name: "concurrency", kind: kindInt, defaultValue: core.DefaultConcurrency, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.Concurrency = v.(int)
	}},
	{name: "startDate", kind: kindDate, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.StartDate = v.(payloads.Date)
	}},
	{name: "endDate", kind: kindDate, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		d := v.(payloads.Date)
		r.EndDate = &d
	}},
	{name: "workflowTimezone", kind: kindString, defaultValue: core.DefaultWorkflowTimezone, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.WorkflowTimezone = v.(string)
	}},
	{name: "retries", kind: kindInt, defaultValue: core.DefaultRetries, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.Retries = v.(int)
	}},
	{name: "retryDelay", kind: kindInt, defaultValue: core.DefaultRetryDelay, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.RetryDelay = v.(int)
	}},
	{name: "workflowCatchup", kind: kindBool, defaultValue: false, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.WorkflowCatchup = v.(bool)
	}},
	{name: "scheduleInterval", kind: kindString, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		s := v.(string)
		r.ScheduleInterval = &s
	}},
	{name: "workflowTimeout", kind: kindInt, defaultValue: core.DefaultWorkflowTimeout, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		r.WorkflowTimeout = v.(int)
	}},
	{name: "service", kind: kindReference, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		ref := v.(payloads.EntityReference)
		r.Service = &ref
	}},
	{name: "connectorConfig", kind: kindConnectorConfig, set: func(r *payloads.IngestionWorkflowRequest, v any) {
		cfg := v.(payloads.ConnectorConfig)
		r.ConnectorConfig = &cfg
	}},
}

func knownField(name string) bool {
	for _, f := range schema {
		if f.name == name {
			return true
		}
	}
	return false
}
