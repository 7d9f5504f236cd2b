package deployer

import (
	"context"
	"errors"
	"fmt"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type Service struct {
	jsonrpcSvc library.JSONRPC
	log        *logger.Logger
}

func New(jsonrpcSvc library.JSONRPC, log *logger.Logger) library.Deployer {
	return &Service{
		jsonrpcSvc: jsonrpcSvc,
		log:        log,
	}
}

// Deploy hands an accepted request to the scheduler. The scheduler
// replaces an existing workflow of the same name only when forceDeploy is
// set, and creates the workflow paused when pauseWorkflow is set.
func (s *Service) Deploy(ctx context.Context, req payloads.IngestionWorkflowRequest) (*payloads.DeployResult, error) {
	if req.Name == "" {
		return nil, errors.New("cannot deploy an ingestion workflow without a name")
	}

	logContext := []zap.Field{
		zap.String("name", req.Name),
		zap.Bool("forceDeploy", req.ForceDeploy),
		zap.Bool("pauseWorkflow", req.PauseWorkflow),
	}

	var result payloads.DeployResult
	if err := s.jsonrpcSvc.Call(ctx, core.MethodIngestionDeploy, req.ToJSONRPCPayload(), &result, logContext...); err != nil {
		s.log.With(logContext...).WithError(err).Error("Failed to deploy ingestion workflow")
		return nil, fmt.Errorf("failed to deploy ingestion workflow %s: %w", req.Name, err)
	}

	if result.WorkflowID == "" {
		s.log.Error("Scheduler did not return a workflow ID", logContext...)
		return nil, fmt.Errorf("scheduler did not return a workflow ID for %s", req.Name)
	}
	if result.Name == "" {
		result.Name = req.Name
	}

	s.log.Info("Deployed ingestion workflow",
		append(logContext,
			zap.String("workflowID", result.WorkflowID),
			zap.Bool("replaced", result.Replaced))...)
	return &result, nil
}

func (s *Service) Undeploy(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("cannot undeploy an ingestion workflow without a name")
	}

	var result bool
	params := map[string]any{"name": name}
	if err := s.jsonrpcSvc.Call(ctx, core.MethodIngestionDelete, params, &result, zap.String("name", name)); err != nil {
		s.log.WithField("name", name).WithError(err).Error("Failed to undeploy ingestion workflow")
		return fmt.Errorf("failed to undeploy ingestion workflow %s: %w", name, err)
	}

	return s.jsonrpcSvc.ValidateResult(result, "ingestion workflow deletion", zap.String("name", name))
}
