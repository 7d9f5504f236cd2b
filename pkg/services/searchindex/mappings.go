package searchindex

import "github.com/vatesfr/ingestion-sdk-go/pkg/payloads"

func text() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeText}
}

func keyword() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeKeyword}
}

func long() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeLong}
}

func nameField() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeText, Analyzer: payloads.AnalyzerKeyword}
}

func schemaField() payloads.FieldMapping {
	return payloads.FieldMapping{
		Type:     payloads.FieldTypeText,
		Analyzer: payloads.AnalyzerSimple,
		Fields: map[string]payloads.FieldMapping{
			"raw": keyword(),
		},
	}
}

func timestampField() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeDate, Format: payloads.DateFormatEpochSecond}
}

func suggestField() payloads.FieldMapping {
	return payloads.FieldMapping{Type: payloads.FieldTypeCompletion}
}

// The property order below is the order of the published mappings.

func tableMapping() *payloads.IndexMapping {
	return &payloads.IndexMapping{Mappings: payloads.Mappings{Properties: payloads.Properties{
		{Name: "table_name", Mapping: nameField()},
		{Name: "schema", Mapping: schemaField()},
		{Name: "display_name", Mapping: keyword()},
		{Name: "owner", Mapping: keyword()},
		{Name: "followers", Mapping: keyword()},
		{Name: "last_updated_timestamp", Mapping: timestampField()},
		{Name: "description", Mapping: text()},
		{Name: "tier", Mapping: keyword()},
		{Name: "column_names", Mapping: keyword()},
		{Name: "column_descriptions", Mapping: text()},
		{Name: "tags", Mapping: keyword()},
		{Name: "badges", Mapping: text()},
		{Name: "service", Mapping: keyword()},
		{Name: "service_type", Mapping: keyword()},
		{Name: "database", Mapping: keyword()},
		{Name: "suggest", Mapping: suggestField()},
		{Name: "monthly_stats", Mapping: long()},
		{Name: "monthly_percentile_rank", Mapping: long()},
		{Name: "weekly_stats", Mapping: long()},
		{Name: "weekly_percentile_rank", Mapping: long()},
		{Name: "daily_percentile_rank", Mapping: long()},
		{Name: "daily_stats", Mapping: long()},
	}}}
}

func topicMapping() *payloads.IndexMapping {
	return &payloads.IndexMapping{Mappings: payloads.Mappings{Properties: payloads.Properties{
		{Name: "topic_name", Mapping: nameField()},
		{Name: "schema", Mapping: schemaField()},
		{Name: "display_name", Mapping: keyword()},
		{Name: "owner", Mapping: keyword()},
		{Name: "followers", Mapping: keyword()},
		{Name: "last_updated_timestamp", Mapping: timestampField()},
		{Name: "description", Mapping: text()},
		{Name: "tier", Mapping: keyword()},
		{Name: "tags", Mapping: keyword()},
		{Name: "service", Mapping: keyword()},
		{Name: "service_type", Mapping: keyword()},
		{Name: "suggest", Mapping: suggestField()},
	}}}
}
