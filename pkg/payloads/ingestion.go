package payloads

import (
	"encoding/json"
	"sort"
)

// IngestionType selects the connector, and with it the expected shape of
// the connector configuration.
type IngestionType string

const (
	IngestionTypeBigQuery       IngestionType = "bigquery"
	IngestionTypeBigQueryUsage  IngestionType = "bigquery-usage"
	IngestionTypeRedshift       IngestionType = "redshift"
	IngestionTypeRedshiftUsage  IngestionType = "redshift-usage"
	IngestionTypeSnowflake      IngestionType = "snowflake"
	IngestionTypeSnowflakeUsage IngestionType = "snowflake-usage"
	IngestionTypeHive           IngestionType = "hive"
	IngestionTypeMSSQL          IngestionType = "mssql"
	IngestionTypeMySQL          IngestionType = "mysql"
	IngestionTypePostgres       IngestionType = "postgres"
	IngestionTypePresto         IngestionType = "presto"
	IngestionTypeTrino          IngestionType = "trino"
	IngestionTypeVertica        IngestionType = "vertica"
	IngestionTypeOracle         IngestionType = "oracle"
	IngestionTypeAthena         IngestionType = "athena"
	IngestionTypeGlue           IngestionType = "glue"
)

// IngestionTypes lists the closed set of connector categories.
var IngestionTypes = []IngestionType{
	IngestionTypeBigQuery,
	IngestionTypeBigQueryUsage,
	IngestionTypeRedshift,
	IngestionTypeRedshiftUsage,
	IngestionTypeSnowflake,
	IngestionTypeSnowflakeUsage,
	IngestionTypeHive,
	IngestionTypeMSSQL,
	IngestionTypeMySQL,
	IngestionTypePostgres,
	IngestionTypePresto,
	IngestionTypeTrino,
	IngestionTypeVertica,
	IngestionTypeOracle,
	IngestionTypeAthena,
	IngestionTypeGlue,
}

func (t IngestionType) IsValid() bool {
	for _, known := range IngestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ConnectorConfig is the source specific part of the request. Keys that
// the SDK does not model are kept in Options and serialized inline.
type ConnectorConfig struct {
	Username             string         `json:"username,omitempty" mapstructure:"username"`
	Password             string         `json:"password,omitempty" mapstructure:"password"`
	Host                 string         `json:"host,omitempty" mapstructure:"host"`
	Database             string         `json:"database,omitempty" mapstructure:"database"`
	IncludeViews         *bool          `json:"includeViews,omitempty" mapstructure:"includeViews"`
	EnableDataProfiler   *bool          `json:"enableDataProfiler,omitempty" mapstructure:"enableDataProfiler"`
	IncludeFilterPattern []string       `json:"includeFilterPattern,omitempty" mapstructure:"includeFilterPattern"`
	ExcludeFilterPattern []string       `json:"excludeFilterPattern,omitempty" mapstructure:"excludeFilterPattern"`
	Options              map[string]any `json:"-" mapstructure:",remain"`
}

func (c ConnectorConfig) MarshalJSON() ([]byte, error) {
	type plain ConnectorConfig
	data, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	if len(c.Options) == 0 {
		return data, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Options {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Keys returns the sorted list of keys carrying a value.
func (c ConnectorConfig) Keys() []string {
	var keys []string
	add := func(key string, set bool) {
		if set {
			keys = append(keys, key)
		}
	}
	add("username", c.Username != "")
	add("password", c.Password != "")
	add("host", c.Host != "")
	add("database", c.Database != "")
	add("includeViews", c.IncludeViews != nil)
	add("enableDataProfiler", c.EnableDataProfiler != nil)
	add("includeFilterPattern", len(c.IncludeFilterPattern) > 0)
	add("excludeFilterPattern", len(c.ExcludeFilterPattern) > 0)
	modeled := len(keys)
	for k := range c.Options {
		if !contains(keys[:modeled], k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (c ConnectorConfig) Has(key string) bool {
	return contains(c.Keys(), key)
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func (c ConnectorConfig) clone() ConnectorConfig {
	out := c
	if c.IncludeViews != nil {
		v := *c.IncludeViews
		out.IncludeViews = &v
	}
	if c.EnableDataProfiler != nil {
		v := *c.EnableDataProfiler
		out.EnableDataProfiler = &v
	}
	out.IncludeFilterPattern = append([]string(nil), c.IncludeFilterPattern...)
	out.ExcludeFilterPattern = append([]string(nil), c.ExcludeFilterPattern...)
	if c.Options != nil {
		out.Options = deepCopyMap(c.Options)
	}
	return out
}

// ConnectorShape describes what a connector configuration must look like
// for a given ingestion type.
type ConnectorShape struct {
	// ServiceType is the entity type the bound service must have.
	ServiceType string   `json:"serviceType"`
	Required    []string `json:"required"`
	Forbidden   []string `json:"forbidden,omitempty"`
}

// IngestionWorkflowRequest is the create/update request for a scheduled
// ingestion workflow. Once accepted by the assembler it is passed by value
// and never modified.
type IngestionWorkflowRequest struct {
	Name             string           `json:"name"`
	DisplayName      *string          `json:"displayName,omitempty"`
	Description      *string          `json:"description,omitempty"`
	IngestionType    *IngestionType   `json:"ingestionType,omitempty"`
	Owner            *EntityReference `json:"owner,omitempty"`
	Tags             []TagLabel       `json:"tags"`
	ForceDeploy      bool             `json:"forceDeploy"`
	PauseWorkflow    bool             `json:"pauseWorkflow"`
	Concurrency      int              `json:"concurrency"`
	StartDate        Date             `json:"startDate"`
	EndDate          *Date            `json:"endDate,omitempty"`
	WorkflowTimezone string           `json:"workflowTimezone"`
	Retries          int              `json:"retries"`
	RetryDelay       int              `json:"retryDelay"`
	WorkflowCatchup  bool             `json:"workflowCatchup"`
	ScheduleInterval *string          `json:"scheduleInterval,omitempty"`
	WorkflowTimeout  int              `json:"workflowTimeout"`
	Service          *EntityReference `json:"service"`
	ConnectorConfig  *ConnectorConfig `json:"connectorConfig"`
}

// ToPayload converts the request back into the raw form accepted by the
// normalizer.
func (r IngestionWorkflowRequest) ToPayload() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ToJSONRPCPayload builds the params of the scheduler deploy call.
func (r IngestionWorkflowRequest) ToJSONRPCPayload() map[string]any {
	payload := map[string]any{
		"name":             r.Name,
		"forceDeploy":      r.ForceDeploy,
		"pauseWorkflow":    r.PauseWorkflow,
		"concurrency":      r.Concurrency,
		"startDate":        r.StartDate.String(),
		"workflowTimezone": r.WorkflowTimezone,
		"retries":          r.Retries,
		"retryDelay":       r.RetryDelay,
		"workflowCatchup":  r.WorkflowCatchup,
		"workflowTimeout":  r.WorkflowTimeout,
	}

	if r.DisplayName != nil {
		payload["displayName"] = *r.DisplayName
	}
	if r.Description != nil {
		payload["description"] = *r.Description
	}
	if r.IngestionType != nil {
		payload["ingestionType"] = string(*r.IngestionType)
	}
	if r.Owner != nil {
		payload["owner"] = *r.Owner
	}
	if len(r.Tags) > 0 {
		tags := make([]string, 0, len(r.Tags))
		for _, tag := range r.Tags {
			tags = append(tags, tag.TagFQN)
		}
		payload["tags"] = tags
	}
	if r.EndDate != nil {
		payload["endDate"] = r.EndDate.String()
	}
	if r.ScheduleInterval != nil {
		payload["scheduleInterval"] = *r.ScheduleInterval
	}
	if r.Service != nil {
		payload["service"] = *r.Service
	}
	if r.ConnectorConfig != nil {
		payload["connectorConfig"] = *r.ConnectorConfig
	}

	return payload
}

// Clone returns a deep copy sharing no memory with r.
func (r IngestionWorkflowRequest) Clone() IngestionWorkflowRequest {
	out := r
	out.DisplayName = cloneString(r.DisplayName)
	out.Description = cloneString(r.Description)
	out.ScheduleInterval = cloneString(r.ScheduleInterval)
	if r.IngestionType != nil {
		t := *r.IngestionType
		out.IngestionType = &t
	}
	if r.Owner != nil {
		owner := r.Owner.clone()
		out.Owner = &owner
	}
	if r.Tags != nil {
		out.Tags = append([]TagLabel{}, r.Tags...)
	}
	if r.EndDate != nil {
		end := *r.EndDate
		out.EndDate = &end
	}
	if r.Service != nil {
		service := r.Service.clone()
		out.Service = &service
	}
	if r.ConnectorConfig != nil {
		cfg := r.ConnectorConfig.clone()
		out.ConnectorConfig = &cfg
	}
	return out
}

// DeployResult is what the scheduler answers to a deploy call.
type DeployResult struct {
	Name       string `json:"name"`
	WorkflowID string `json:"workflowId"`
	Paused     bool   `json:"paused"`
	Replaced   bool   `json:"replaced"`
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deepCopyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return deepCopyMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
