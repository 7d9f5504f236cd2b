/*
Each concern of the SDK is described by an interface in this package and
implemented by its own service package. The sdk facade acts as a registry
wiring the services together, and tests swap any of them for the mocks
generated into library/mock.
*/
package library

import (
	"context"

	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/ingestion.go . Ingestion,Normalizer,Validator

// Ingestion turns raw caller input into an accepted request.
type Ingestion interface {
	Assemble(ctx context.Context, raw map[string]any) (payloads.IngestionWorkflowRequest, error)
	AssembleDocument(ctx context.Context, data []byte, format payloads.DocumentFormat) (payloads.IngestionWorkflowRequest, error)
}

type Normalizer interface {
	Normalize(raw map[string]any) (*payloads.IngestionWorkflowRequest, error)
}

type Validator interface {
	// ValidateFields returns every single-field violation. The error is
	// reserved for infrastructure failures of the resolvers.
	ValidateFields(ctx context.Context, req *payloads.IngestionWorkflowRequest) ([]payloads.Violation, error)
	CheckInvariants(req *payloads.IngestionWorkflowRequest) []payloads.Violation
}
