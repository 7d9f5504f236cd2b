package normalizer

import (
	"encoding/json"
	"fmt"

	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"gopkg.in/yaml.v3"
)

// FromJSON reads a request document encoded as a JSON object.
func FromJSON(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON request: %w", err)
	}
	return raw, nil
}

// FromYAML reads a request document encoded as a YAML mapping.
func FromYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML request: %w", err)
	}
	return raw, nil
}

// FromDocument dispatches on the document format.
func FromDocument(data []byte, format payloads.DocumentFormat) (map[string]any, error) {
	switch format {
	case payloads.FormatJSON:
		return FromJSON(data)
	case payloads.FormatYAML:
		return FromYAML(data)
	}
	return nil, fmt.Errorf("unsupported request format %q", format)
}
