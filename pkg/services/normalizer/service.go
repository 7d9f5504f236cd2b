package normalizer

import (
	"sort"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type Service struct {
	log *logger.Logger
}

func New(log *logger.Logger) library.Normalizer {
	return &Service{log: log}
}

// Normalize coerces every raw value to its declared type and fills absent
// optional fields with their defaults. All type mismatches are reported
// together in a *payloads.RejectionError; required fields that are missing
// are left empty for the validator to report.
func (s *Service) Normalize(raw map[string]any) (*payloads.IngestionWorkflowRequest, error) {
	var violations []payloads.Violation

	var unknown []string
	for key := range raw {
		if !knownField(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		violations = append(violations, payloads.NewViolation(payloads.TypeMismatch, "unknown field", key))
	}

	req := &payloads.IngestionWorkflowRequest{}
	var defaulted []string
	for _, f := range schema {
		value, present := raw[f.name]
		if !present || value == nil {
			if f.defaultValue != nil {
				f.set(req, f.defaultValue)
				defaulted = append(defaulted, f.name)
			}
			continue
		}

		coerced, err := coerce(f.kind, value)
		if err != nil {
			violations = append(violations, payloads.NewViolation(
				payloads.TypeMismatch,
				"cannot be read as "+f.kind.String()+": "+err.Error(),
				f.name,
			))
			continue
		}
		f.set(req, coerced)
	}

	if len(violations) > 0 {
		s.log.Debug("Ingestion request has type mismatches",
			zap.String("name", req.Name),
			zap.Int("violations", len(violations)))
		return nil, &payloads.RejectionError{Stage: payloads.StageNormalize, Violations: violations}
	}

	s.log.Debug("Normalized ingestion request",
		zap.String("name", req.Name),
		zap.Strings("defaulted", defaulted))
	return req, nil
}
