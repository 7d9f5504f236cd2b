package library

import (
	"context"
	"errors"

	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
)

var (
	// ErrReferenceNotFound is wrapped by resolvers when the catalog does
	// not know the referenced entity.
	ErrReferenceNotFound = errors.New("entity reference not found")
	// ErrTagNotFound is wrapped by tag validators for unknown tags.
	ErrTagNotFound = errors.New("tag not found")
)

//go:generate mockgen --build_flags=--mod=mod --destination mock/resolver.go . EntityResolver,TagValidator

// EntityResolver confirms that a reference exists and returns its
// canonical form. allowedTypes limits the entity types the reference may
// resolve to; empty means any known type.
type EntityResolver interface {
	Resolve(ctx context.Context, ref payloads.EntityReference, allowedTypes []string) (*payloads.EntityReference, error)
}

// TagValidator confirms that a tag label is known to the catalog.
type TagValidator interface {
	ValidateTag(ctx context.Context, label payloads.TagLabel) error
}
