package normalizer

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

var uuidType = reflect.TypeOf(uuid.UUID{})

// stringToUUIDHook lets mapstructure fill uuid.UUID fields from text.
func stringToUUIDHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != uuidType {
		return data, nil
	}
	return uuid.FromString(data.(string))
}

func decodeStruct(input any, out any, weak bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToUUIDHook,
		WeaklyTypedInput: weak,
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func coerce(kind fieldKind, value any) (any, error) {
	switch kind {
	case kindString:
		return toString(value)
	case kindInt:
		return toInt(value)
	case kindBool:
		return toBool(value)
	case kindDate:
		return toDate(value)
	case kindIngestionType:
		return toIngestionType(value)
	case kindReference:
		return toReference(value)
	case kindTags:
		return toTags(value)
	case kindConnectorConfig:
		return toConnectorConfig(value)
	}
	return nil, fmt.Errorf("no coercion for %s", kind)
}

func toString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}
	return s, nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d is out of range", v)
		}
		return int(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", v.String())
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %q", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", value)
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("expected an integer, got %v", f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int cannot hold.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("integer %v is out of range", f)
	}
	return int(f), nil
}

// toBool accepts the textual literals some clients send for booleans
// ("false" was the published default of several flags).
func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("expected a boolean, got %q", v)
		}
		return b, nil
	}
	return false, fmt.Errorf("expected a boolean, got %T", value)
}

func toDate(value any) (payloads.Date, error) {
	switch v := value.(type) {
	case payloads.Date:
		return v, nil
	case *payloads.Date:
		if v == nil {
			return payloads.Date{}, fmt.Errorf("expected a date, got nil")
		}
		return *v, nil
	case time.Time:
		return payloads.DateOf(v), nil
	case string:
		return payloads.ParseDate(strings.TrimSpace(v))
	}
	return payloads.Date{}, fmt.Errorf("expected a date, got %T", value)
}

func toIngestionType(value any) (payloads.IngestionType, error) {
	switch v := value.(type) {
	case payloads.IngestionType:
		return v, nil
	case string:
		return payloads.IngestionType(v), nil
	}
	return "", fmt.Errorf("expected an ingestion type name, got %T", value)
}

func toReference(value any) (payloads.EntityReference, error) {
	switch v := value.(type) {
	case payloads.EntityReference:
		return v, nil
	case *payloads.EntityReference:
		if v == nil {
			return payloads.EntityReference{}, fmt.Errorf("expected an entity reference, got nil")
		}
		return *v, nil
	case string:
		return payloads.ReferenceFromString(v), nil
	case map[string]any:
		var ref payloads.EntityReference
		if err := decodeStruct(v, &ref, false); err != nil {
			return payloads.EntityReference{}, err
		}
		return ref, nil
	}
	return payloads.EntityReference{}, fmt.Errorf("expected an entity reference, got %T", value)
}

func toTags(value any) ([]payloads.TagLabel, error) {
	switch v := value.(type) {
	case []payloads.TagLabel:
		labels := make([]payloads.TagLabel, len(v))
		for i, label := range v {
			labels[i] = withTagDefaults(label)
		}
		return labels, nil
	case []string:
		labels := make([]payloads.TagLabel, len(v))
		for i, fqn := range v {
			labels[i] = withTagDefaults(payloads.TagLabel{TagFQN: fqn})
		}
		return labels, nil
	case []any:
		labels := make([]payloads.TagLabel, len(v))
		for i, item := range v {
			label, err := toTag(item)
			if err != nil {
				return nil, fmt.Errorf("tags[%d]: %w", i, err)
			}
			labels[i] = label
		}
		return labels, nil
	}
	return nil, fmt.Errorf("expected a list of tag labels, got %T", value)
}

func toTag(value any) (payloads.TagLabel, error) {
	switch v := value.(type) {
	case payloads.TagLabel:
		return withTagDefaults(v), nil
	case string:
		return withTagDefaults(payloads.TagLabel{TagFQN: v}), nil
	case map[string]any:
		var label payloads.TagLabel
		if err := decodeStruct(v, &label, false); err != nil {
			return payloads.TagLabel{}, err
		}
		return withTagDefaults(label), nil
	}
	return payloads.TagLabel{}, fmt.Errorf("expected a tag label, got %T", value)
}

func withTagDefaults(label payloads.TagLabel) payloads.TagLabel {
	if label.LabelType == "" {
		label.LabelType = payloads.LabelTypeManual
	}
	if label.State == "" {
		label.State = payloads.TagStateConfirmed
	}
	return label
}

func toConnectorConfig(value any) (payloads.ConnectorConfig, error) {
	switch v := value.(type) {
	case payloads.ConnectorConfig:
		return v, nil
	case *payloads.ConnectorConfig:
		if v == nil {
			return payloads.ConnectorConfig{}, fmt.Errorf("expected a connector config, got nil")
		}
		return *v, nil
	case map[string]any:
		var cfg payloads.ConnectorConfig
		if err := decodeStruct(v, &cfg, true); err != nil {
			return payloads.ConnectorConfig{}, err
		}
		if len(cfg.Options) == 0 {
			cfg.Options = nil
		}
		return cfg, nil
	}
	return payloads.ConnectorConfig{}, fmt.Errorf("expected a connector config object, got %T", value)
}
