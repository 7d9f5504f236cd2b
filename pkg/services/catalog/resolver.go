package catalog

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/vatesfr/ingestion-sdk-go/client"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type EntityResolver struct {
	client *client.Client
	log    *logger.Logger
}

func NewEntityResolver(client *client.Client, log *logger.Logger) library.EntityResolver {
	return &EntityResolver{
		client: client,
		log:    log,
	}
}

// Resolve looks the reference up in the collection matching its type. A
// reference without a type is searched in the collections of
// allowedTypes, or in every known collection when allowedTypes is empty.
// The first match wins.
func (r *EntityResolver) Resolve(ctx context.Context, ref payloads.EntityReference, allowedTypes []string) (*payloads.EntityReference, error) {
	if ref.IsEmpty() {
		return nil, fmt.Errorf("%w: reference carries neither an id nor a name", library.ErrReferenceNotFound)
	}

	var types []string
	switch {
	case ref.Type != "":
		if len(allowedTypes) > 0 && !slices.Contains(allowedTypes, ref.Type) {
			return nil, fmt.Errorf("%w: %s is not one of %s", library.ErrReferenceNotFound, ref.Type, strings.Join(allowedTypes, ", "))
		}
		types = []string{ref.Type}
	case len(allowedTypes) > 0:
		types = slices.Clone(allowedTypes)
		slices.Sort(types)
	default:
		types = knownTypes()
	}

	for _, entityType := range types {
		collection, ok := core.EntityCollections[entityType]
		if !ok {
			return nil, fmt.Errorf("%w: unknown entity type %q", library.ErrReferenceNotFound, entityType)
		}

		var entity payloads.CatalogEntity
		err := client.TypedGet(ctx, r.client, entityPath(collection, ref), core.EmptyParams, &entity)
		if client.IsNotFound(err) {
			continue
		}
		if err != nil {
			r.log.Error("Failed to resolve entity reference",
				zap.String("reference", ref.String()),
				zap.String("collection", collection),
				zap.Error(err))
			return nil, err
		}
		if entity.Deleted {
			continue
		}

		resolved := entity.Reference(entityType)
		r.log.Debug("Resolved entity reference",
			zap.String("reference", ref.String()),
			zap.String("resolved", resolved.String()))
		return &resolved, nil
	}

	return nil, fmt.Errorf("%w: %s", library.ErrReferenceNotFound, ref)
}

func entityPath(collection string, ref payloads.EntityReference) string {
	builder := core.NewPathBuilder().Resource(collection)
	if ref.ID != nil && !ref.ID.IsNil() {
		return builder.ID(*ref.ID).Build()
	}
	return builder.ByName(ref.Name).Build()
}

func knownTypes() []string {
	types := make([]string, 0, len(core.EntityCollections))
	for entityType := range core.EntityCollections {
		types = append(types, entityType)
	}
	sort.Strings(types)
	return types
}
