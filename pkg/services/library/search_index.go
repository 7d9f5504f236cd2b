package library

import "github.com/vatesfr/ingestion-sdk-go/pkg/payloads"

type SearchIndex interface {
	Mapping(kind payloads.DocumentKind) (*payloads.IndexMapping, error)
	MappingJSON(kind payloads.DocumentKind) ([]byte, error)
	// CheckDocument lists the problems that would make the document
	// diverge from the index mapping. An empty result means it conforms.
	CheckDocument(kind payloads.DocumentKind, doc any) ([]string, error)
}
