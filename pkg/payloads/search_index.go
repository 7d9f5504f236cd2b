package payloads

import (
	"bytes"
	"encoding/json"
)

// DocumentKind identifies a search index document type.
type DocumentKind string

const (
	DocumentKindTable DocumentKind = "table"
	DocumentKindTopic DocumentKind = "topic"
)

// IndexName returns the index documents of this kind are written to.
func (k DocumentKind) IndexName() string {
	return string(k) + "_search_index"
}

// Field types and options used by the index mappings.
const (
	FieldTypeText       = "text"
	FieldTypeKeyword    = "keyword"
	FieldTypeDate       = "date"
	FieldTypeLong       = "long"
	FieldTypeCompletion = "completion"

	AnalyzerKeyword = "keyword"
	AnalyzerSimple  = "simple"

	DateFormatEpochSecond = "epoch_second"
)

type FieldMapping struct {
	Type     string                  `json:"type"`
	Analyzer string                  `json:"analyzer,omitempty"`
	Format   string                  `json:"format,omitempty"`
	Fields   map[string]FieldMapping `json:"fields,omitempty"`
}

type Property struct {
	Name    string
	Mapping FieldMapping
}

// Properties keeps mapping properties in declaration order, which is the
// order the published mappings use.
type Properties []Property

func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		mapping, err := json.Marshal(prop.Mapping)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(mapping)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lookup returns the mapping of the named property.
func (p Properties) Lookup(name string) (FieldMapping, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Mapping, true
		}
	}
	return FieldMapping{}, false
}

type Mappings struct {
	Properties Properties `json:"properties"`
}

type IndexMapping struct {
	Mappings Mappings `json:"mappings"`
}

// SuggestEntry feeds the completion suggester.
type SuggestEntry struct {
	Input  []string `json:"input"`
	Weight int      `json:"weight,omitempty"`
}

// TableDocument is a table as indexed in table_search_index.
type TableDocument struct {
	TableName             string         `json:"table_name"`
	Schema                string         `json:"schema,omitempty"`
	DisplayName           string         `json:"display_name,omitempty"`
	Owner                 string         `json:"owner,omitempty"`
	Followers             []string       `json:"followers,omitempty"`
	LastUpdatedTimestamp  int64          `json:"last_updated_timestamp"`
	Description           string         `json:"description,omitempty"`
	Tier                  string         `json:"tier,omitempty"`
	ColumnNames           []string       `json:"column_names,omitempty"`
	ColumnDescriptions    []string       `json:"column_descriptions,omitempty"`
	Tags                  []string       `json:"tags,omitempty"`
	Badges                []string       `json:"badges,omitempty"`
	Service               string         `json:"service,omitempty"`
	ServiceType           string         `json:"service_type,omitempty"`
	Database              string         `json:"database,omitempty"`
	Suggest               []SuggestEntry `json:"suggest,omitempty"`
	MonthlyStats          int64          `json:"monthly_stats"`
	MonthlyPercentileRank int64          `json:"monthly_percentile_rank"`
	WeeklyStats           int64          `json:"weekly_stats"`
	WeeklyPercentileRank  int64          `json:"weekly_percentile_rank"`
	DailyPercentileRank   int64          `json:"daily_percentile_rank"`
	DailyStats            int64          `json:"daily_stats"`
}

// TopicDocument is a topic as indexed in topic_search_index.
type TopicDocument struct {
	TopicName            string         `json:"topic_name"`
	Schema               string         `json:"schema,omitempty"`
	DisplayName          string         `json:"display_name,omitempty"`
	Owner                string         `json:"owner,omitempty"`
	Followers            []string       `json:"followers,omitempty"`
	LastUpdatedTimestamp int64          `json:"last_updated_timestamp"`
	Description          string         `json:"description,omitempty"`
	Tier                 string         `json:"tier,omitempty"`
	Tags                 []string       `json:"tags,omitempty"`
	Service              string         `json:"service,omitempty"`
	ServiceType          string         `json:"service_type,omitempty"`
	Suggest              []SuggestEntry `json:"suggest,omitempty"`
}
