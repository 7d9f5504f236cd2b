package validator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"github.com/robfig/cron/v3"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
)

// cronParser accepts the classic five fields, an optional leading seconds
// field, and descriptors such as @daily.
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type fieldCheck func(req *payloads.IngestionWorkflowRequest) []payloads.Violation

var fieldChecks = []fieldCheck{
	checkName,
	checkIngestionType,
	checkOwner,
	checkTags,
	checkConcurrency,
	checkStartDate,
	checkTimezone,
	checkRetries,
	checkRetryDelay,
	checkScheduleInterval,
	checkWorkflowTimeout,
	checkService,
	checkConnectorConfig,
}

func constraint(field, reason string) []payloads.Violation {
	return []payloads.Violation{payloads.NewViolation(payloads.FieldConstraintViolation, reason, field)}
}

func checkName(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	length := utf8.RuneCountInString(req.Name)
	switch {
	case length < core.NameMinLength:
		return constraint("name", "is required")
	case length > core.NameMaxLength:
		return constraint("name", fmt.Sprintf("must be at most %d characters, got %d", core.NameMaxLength, length))
	}
	return nil
}

func checkIngestionType(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.IngestionType == nil || req.IngestionType.IsValid() {
		return nil
	}
	return constraint("ingestionType", fmt.Sprintf("unknown ingestion type %q", *req.IngestionType))
}

func checkOwner(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	switch {
	case req.Owner == nil:
		return nil
	case req.Owner.IsEmpty():
		return constraint("owner", "must carry an id or a name")
	case req.Owner.Type != "" && !slices.Contains(core.OwnerTypes, req.Owner.Type):
		return constraint("owner", fmt.Sprintf("must be a user or a team, got %s", req.Owner.Type))
	}
	return nil
}

func checkTags(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	var violations []payloads.Violation
	seen := make(map[string]int, len(req.Tags))
	for i, label := range req.Tags {
		at := core.IndexedField("tags", i)
		if label.TagFQN == "" {
			violations = append(violations, constraint("tags", at+": tagFQN is required")...)
			continue
		}
		for _, segment := range label.Segments() {
			if segment == "" {
				violations = append(violations, constraint("tags", fmt.Sprintf("%s: malformed tagFQN %q", at, label.TagFQN))...)
				break
			}
		}
		if !label.LabelType.IsValid() {
			violations = append(violations, constraint("tags", fmt.Sprintf("%s: unknown labelType %q", at, label.LabelType))...)
		}
		if !label.State.IsValid() {
			violations = append(violations, constraint("tags", fmt.Sprintf("%s: unknown state %q", at, label.State))...)
		}
		if first, ok := seen[label.TagFQN]; ok {
			violations = append(violations, constraint("tags", fmt.Sprintf("%s: duplicates %s", at, core.IndexedField("tags", first)))...)
			continue
		}
		seen[label.TagFQN] = i
	}
	return violations
}

func checkConcurrency(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.Concurrency >= 1 {
		return nil
	}
	return constraint("concurrency", fmt.Sprintf("must be at least 1, got %d", req.Concurrency))
}

func checkStartDate(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if !req.StartDate.IsZero() {
		return nil
	}
	return constraint("startDate", "is required")
}

func checkTimezone(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	// LoadLocation maps "" to UTC and "Local" to the host zone, neither
	// is a timezone database entry.
	if req.WorkflowTimezone == "" || req.WorkflowTimezone == "Local" {
		return constraint("workflowTimezone", fmt.Sprintf("unknown timezone %q", req.WorkflowTimezone))
	}
	if _, err := time.LoadLocation(req.WorkflowTimezone); err != nil {
		return constraint("workflowTimezone", fmt.Sprintf("unknown timezone %q", req.WorkflowTimezone))
	}
	return nil
}

func checkRetries(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.Retries >= 0 {
		return nil
	}
	return constraint("retries", fmt.Sprintf("must not be negative, got %d", req.Retries))
}

func checkRetryDelay(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.RetryDelay >= 0 {
		return nil
	}
	return constraint("retryDelay", fmt.Sprintf("must not be negative, got %d", req.RetryDelay))
}

func checkScheduleInterval(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.ScheduleInterval == nil {
		return nil
	}
	expr := strings.TrimSpace(*req.ScheduleInterval)
	if strings.HasPrefix(expr, "TZ=") || strings.HasPrefix(expr, "CRON_TZ=") {
		return constraint("scheduleInterval", "must not embed a timezone, use workflowTimezone")
	}
	if _, err := cronParser.Parse(expr); err != nil {
		return constraint("scheduleInterval", fmt.Sprintf("invalid cron expression %q: %v", *req.ScheduleInterval, err))
	}
	return nil
}

func checkWorkflowTimeout(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.WorkflowTimeout > 0 {
		return nil
	}
	return constraint("workflowTimeout", fmt.Sprintf("must be positive, got %d", req.WorkflowTimeout))
}

func checkService(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.Service == nil {
		return constraint("service", "is required")
	}
	if req.Service.IsEmpty() {
		return constraint("service", "must carry an id or a name")
	}
	if req.Service.Type != "" && !slices.Contains(core.ServiceTypes, req.Service.Type) {
		return constraint("service", fmt.Sprintf("must be one of %s, got %s", strings.Join(core.ServiceTypes, ", "), req.Service.Type))
	}
	return nil
}

func checkConnectorConfig(req *payloads.IngestionWorkflowRequest) []payloads.Violation {
	if req.ConnectorConfig == nil {
		return constraint("connectorConfig", "is required")
	}
	return nil
}

// resolveReferences asks the catalog about the owner, the service and the
// tags. Unknown entities become UnresolvedReference violations; any other
// failure is returned as an error. An untyped owner or service takes the
// type of the entity it resolved to.
func (s *Service) resolveReferences(ctx context.Context, req *payloads.IngestionWorkflowRequest) ([]payloads.Violation, error) {
	var violations []payloads.Violation

	if s.entityResolver != nil {
		refs := []struct {
			field   string
			ref     *payloads.EntityReference
			allowed []string
		}{
			{"owner", req.Owner, core.OwnerTypes},
			{"service", req.Service, s.serviceTypes(req)},
		}
		for _, r := range refs {
			if r.ref == nil || r.ref.IsEmpty() {
				continue
			}
			resolved, err := s.entityResolver.Resolve(ctx, *r.ref, r.allowed)
			if errors.Is(err, library.ErrReferenceNotFound) {
				violations = append(violations, payloads.NewViolation(
					payloads.UnresolvedReference,
					fmt.Sprintf("%s %s does not exist as a %s", r.field, r.ref, strings.Join(r.allowed, " or ")),
					r.field,
				))
				continue
			}
			if err != nil {
				return nil, core.ErrFailedToResolveReference.WithArgs(r.field, r.ref, err)
			}
			if resolved != nil && r.ref.Type == "" {
				r.ref.Type = resolved.Type
			}
		}
	}

	if s.tagValidator != nil {
		for i, label := range req.Tags {
			if label.TagFQN == "" {
				continue
			}
			err := s.tagValidator.ValidateTag(ctx, label)
			if errors.Is(err, library.ErrTagNotFound) {
				violations = append(violations, payloads.NewViolation(
					payloads.UnresolvedReference,
					fmt.Sprintf("%s: tag %s does not exist", core.IndexedField("tags", i), label.TagFQN),
					"tags",
				))
				continue
			}
			if err != nil {
				return nil, core.ErrFailedToValidateTag.WithArgs(label.TagFQN, err)
			}
		}
	}

	return violations, nil
}

// serviceTypes lists the entity types the service may resolve to. An
// untyped service of a known ingestion type is only looked up among the
// services that connector runs against.
func (s *Service) serviceTypes(req *payloads.IngestionWorkflowRequest) []string {
	if req.Service == nil || req.Service.Type != "" || req.IngestionType == nil {
		return core.ServiceTypes
	}
	if shape, ok := s.registry.Shape(*req.IngestionType); ok && shape.ServiceType != "" {
		return []string{shape.ServiceType}
	}
	return core.ServiceTypes
}
