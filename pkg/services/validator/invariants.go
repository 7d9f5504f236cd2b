package validator

import (
	"fmt"
	"strings"

	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

func crossField(reason string, fields ...string) payloads.Violation {
	return payloads.NewViolation(payloads.CrossFieldViolation, reason, fields...)
}

func checkDateOrder(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.EndDate == nil || !req.EndDate.Before(req.StartDate) {
		return nil
	}
	return []payloads.Violation{crossField(
		fmt.Sprintf("endDate %s is earlier than startDate %s", req.EndDate, req.StartDate),
		"startDate", "endDate",
	)}
}

// checkConnectorBinding matches the connector config and the service
// against the shape registered for the ingestion type. Without an
// ingestion type there is nothing to match against and the connector
// config is taken as is.
func (s *Service) checkConnectorBinding(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.IngestionType == nil || req.ConnectorConfig == nil {
		return nil
	}

	shape, ok := s.registry.Shape(*req.IngestionType)
	if !ok {
		return []payloads.Violation{crossField(
			fmt.Sprintf("no connector config shape is registered for %q", *req.IngestionType),
			"ingestionType", "connectorConfig",
		)}
	}

	var violations []payloads.Violation

	var missing, forbidden []string
	for _, key := range shape.Required {
		if !req.ConnectorConfig.Has(key) {
			missing = append(missing, key)
		}
	}
	for _, key := range shape.Forbidden {
		if req.ConnectorConfig.Has(key) {
			forbidden = append(forbidden, key)
		}
	}
	if len(missing) > 0 {
		violations = append(violations, crossField(
			fmt.Sprintf("%s connector requires %s", *req.IngestionType, strings.Join(missing, ", ")),
			"ingestionType", "connectorConfig",
		))
	}
	if len(forbidden) > 0 {
		violations = append(violations, crossField(
			fmt.Sprintf("%s connector does not accept %s", *req.IngestionType, strings.Join(forbidden, ", ")),
			"ingestionType", "connectorConfig",
		))
	}

	if req.Service != nil && req.Service.Type != "" && shape.ServiceType != "" && req.Service.Type != shape.ServiceType {
		violations = append(violations, crossField(
			fmt.Sprintf("%s connector runs against a %s, service is a %s", *req.IngestionType, shape.ServiceType, req.Service.Type),
			"ingestionType", "service",
		))
	}

	return violations
}
