package library

import "github.com/vatesfr/ingestion-sdk-go/pkg/payloads"

//go:generate mockgen --build_flags=--mod=mod --destination mock/registry.go . ConnectorSchemaRegistry

// ConnectorSchemaRegistry knows the connector configuration shape expected
// for each ingestion type.
type ConnectorSchemaRegistry interface {
	Shape(ingestionType payloads.IngestionType) (payloads.ConnectorShape, bool)
	Register(ingestionType payloads.IngestionType, shape payloads.ConnectorShape)
	Types() []payloads.IngestionType
}
