package searchindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type Service struct {
	log *logger.Logger
}

func New(log *logger.Logger) library.SearchIndex {
	return &Service{log: log}
}

// Mapping returns a fresh copy of the index mapping for the document kind.
func (s *Service) Mapping(kind payloads.DocumentKind) (*payloads.IndexMapping, error) {
	switch kind {
	case payloads.DocumentKindTable:
		return tableMapping(), nil
	case payloads.DocumentKindTopic:
		return topicMapping(), nil
	}
	return nil, fmt.Errorf("unknown search index document kind %q", kind)
}

// MappingJSON encodes the mapping with its properties in published order.
func (s *Service) MappingJSON(kind payloads.DocumentKind) ([]byte, error) {
	mapping, err := s.Mapping(kind)
	if err != nil {
		return nil, err
	}
	return json.Marshal(mapping)
}

// CheckDocument encodes doc as JSON and compares every top level field
// with the mapping. Null fields are ignored.
func (s *Service) CheckDocument(kind payloads.DocumentKind, doc any) ([]string, error) {
	mapping, err := s.Mapping(kind)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", kind, err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%s document must encode to a JSON object: %w", kind, err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		value := fields[name]
		if value == nil {
			continue
		}
		field, ok := mapping.Mappings.Properties.Lookup(name)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: not mapped in %s", name, kind.IndexName()))
			continue
		}
		if !compatible(field, value) {
			problems = append(problems, fmt.Sprintf("%s: %s value is not compatible with %s", name, describe(value), field.Type))
		}
	}

	s.log.Debug("Checked search index document",
		zap.String("index", kind.IndexName()),
		zap.Int("problems", len(problems)))
	return problems, nil
}

// compatible reports whether value can be indexed into the field. Arrays
// are accepted wherever their elements are.
func compatible(field payloads.FieldMapping, value any) bool {
	if values, ok := value.([]any); ok {
		for _, v := range values {
			if v != nil && !compatible(field, v) {
				return false
			}
		}
		return true
	}

	switch field.Type {
	case payloads.FieldTypeText, payloads.FieldTypeKeyword:
		_, ok := value.(string)
		return ok
	case payloads.FieldTypeLong:
		return isInteger(value)
	case payloads.FieldTypeDate:
		if field.Format == payloads.DateFormatEpochSecond {
			return isInteger(value)
		}
		_, ok := value.(string)
		return ok || isInteger(value)
	case payloads.FieldTypeCompletion:
		switch typed := value.(type) {
		case string:
			return true
		case map[string]any:
			input, ok := typed["input"]
			return ok && compatible(payloads.FieldMapping{Type: payloads.FieldTypeKeyword}, input)
		}
		return false
	}
	return false
}

func isInteger(value any) bool {
	number, ok := value.(json.Number)
	if !ok {
		return false
	}
	_, err := number.Int64()
	return err == nil
}

func describe(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", value)
}
