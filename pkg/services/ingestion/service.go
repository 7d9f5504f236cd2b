package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/normalizer"
	"go.uber.org/zap"
)

type Service struct {
	normalizer library.Normalizer
	validator  library.Validator
	log        *logger.Logger
}

func New(normalizerSvc library.Normalizer, validatorSvc library.Validator, log *logger.Logger) library.Ingestion {
	return &Service{
		normalizer: normalizerSvc,
		validator:  validatorSvc,
		log:        log,
	}
}

// assembly tracks one request through the pipeline. It lives for a single
// Assemble call.
type assembly struct {
	state State
	req   *payloads.IngestionWorkflowRequest
	log   *logger.Logger
}

func (a *assembly) advance() {
	from := a.state
	a.state = a.state.next()
	a.log.Debug("Ingestion request transition",
		zap.Stringer("from", from),
		zap.Stringer("to", a.state))
}

func (a *assembly) reject(stage payloads.Stage, violations []payloads.Violation) error {
	from := a.state
	a.state = StateRejected
	a.log.Debug("Ingestion request transition",
		zap.Stringer("from", from),
		zap.Stringer("to", a.state),
		zap.String("stage", string(stage)),
		zap.Int("violations", len(violations)))
	return &payloads.RejectionError{Stage: stage, Violations: violations}
}

// Assemble normalizes, validates and checks the invariants of a raw
// request. An accepted request is returned as a deep copy; a rejected one
// yields a *payloads.RejectionError listing every violation of the stage
// that failed.
func (s *Service) Assemble(ctx context.Context, raw map[string]any) (payloads.IngestionWorkflowRequest, error) {
	a := &assembly{state: StateRaw, log: s.log}

	req, err := s.normalizer.Normalize(raw)
	if err != nil {
		var rejection *payloads.RejectionError
		if errors.As(err, &rejection) {
			return payloads.IngestionWorkflowRequest{}, a.reject(rejection.Stage, rejection.Violations)
		}
		return payloads.IngestionWorkflowRequest{}, fmt.Errorf("failed to normalize ingestion request: %w", err)
	}
	a.req = req
	a.log = s.log.WithField("name", req.Name)
	a.advance()

	violations, err := s.validator.ValidateFields(ctx, a.req)
	if err != nil {
		a.log.WithError(err).Error("Failed to validate ingestion request")
		return payloads.IngestionWorkflowRequest{}, fmt.Errorf("failed to validate ingestion request: %w", err)
	}
	if len(violations) > 0 {
		return payloads.IngestionWorkflowRequest{}, a.reject(payloads.StageValidate, violations)
	}
	a.advance()

	if violations := s.validator.CheckInvariants(a.req); len(violations) > 0 {
		return payloads.IngestionWorkflowRequest{}, a.reject(payloads.StageInvariants, violations)
	}
	a.advance()

	return a.req.Clone(), nil
}

// AssembleDocument reads a YAML or JSON request document and assembles it.
// A document that does not parse is an error, not a rejection.
func (s *Service) AssembleDocument(ctx context.Context, data []byte, format payloads.DocumentFormat) (payloads.IngestionWorkflowRequest, error) {
	raw, err := normalizer.FromDocument(data, format)
	if err != nil {
		s.log.Error("Failed to read ingestion request document",
			zap.String("format", string(format)),
			zap.Error(err))
		return payloads.IngestionWorkflowRequest{}, err
	}
	return s.Assemble(ctx, raw)
}
