package validator

import (
	"context"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type Service struct {
	registry library.ConnectorSchemaRegistry
	// Optional. Without them references are only checked for shape.
	entityResolver library.EntityResolver
	tagValidator   library.TagValidator

	log *logger.Logger
}

func New(
	registry library.ConnectorSchemaRegistry,
	entityResolver library.EntityResolver,
	tagValidator library.TagValidator,
	log *logger.Logger,
) library.Validator {
	return &Service{
		registry:       registry,
		entityResolver: entityResolver,
		tagValidator:   tagValidator,
		log:            log,
	}
}

// ValidateFields checks every single-field rule and returns all the
// violations found. The only change made to the request is the type of an
// untyped owner or service, taken from the catalog entity it resolved to.
func (s *Service) ValidateFields(ctx context.Context, req *payloads.IngestionWorkflowRequest) ([]payloads.Violation, error) {
	var violations []payloads.Violation
	for _, check := range fieldChecks {
		violations = append(violations, check(req)...)
	}

	resolved, err := s.resolveReferences(ctx, req)
	if err != nil {
		s.log.Error("Failed to resolve references", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	violations = append(violations, resolved...)

	s.log.Debug("Validated ingestion request fields",
		zap.String("name", req.Name),
		zap.Int("violations", len(violations)))
	return violations, nil
}

// CheckInvariants checks the rules spanning several fields. It expects a
// request that passed ValidateFields.
func (s *Service) CheckInvariants(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	var violations []payloads.Violation
	violations = append(violations, checkDateOrder(req)...)
	violations = append(violations, s.checkConnectorBinding(req)...)

	s.log.Debug("Checked ingestion request invariants",
		zap.String("name", req.Name),
		zap.Int("violations", len(violations)))
	return violations
}
