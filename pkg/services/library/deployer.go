package library

import (
	"context"

	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/deployer.go . Deployer

// Deployer hands accepted requests to the external scheduler.
type Deployer interface {
	Deploy(ctx context.Context, req payloads.IngestionWorkflowRequest) (*payloads.DeployResult, error)
	Undeploy(ctx context.Context, name string) error
}
