package catalog

import (
	"context"
	"fmt"

	"github.com/vatesfr/ingestion-sdk-go/client"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

type TagValidator struct {
	client *client.Client
	log    *logger.Logger
}

func NewTagValidator(client *client.Client, log *logger.Logger) library.TagValidator {
	return &TagValidator{
		client: client,
		log:    log,
	}
}

// ValidateTag fetches tags/{category}/{tag}. Deprecated tags are
// reported as unknown.
func (v *TagValidator) ValidateTag(ctx context.Context, label payloads.TagLabel) error {
	segments := label.Segments()
	if len(segments) < 2 {
		return fmt.Errorf("%w: %q is not of the form category.tag", library.ErrTagNotFound, label.TagFQN)
	}

	builder := core.NewPathBuilder().Resource("tags")
	for _, segment := range segments {
		builder.IDString(segment)
	}

	var tag payloads.CatalogTag
	err := client.TypedGet(ctx, v.client, builder.Build(), core.EmptyParams, &tag)
	if client.IsNotFound(err) {
		return fmt.Errorf("%w: %s", library.ErrTagNotFound, label.TagFQN)
	}
	if err != nil {
		v.log.Error("Failed to validate tag", zap.String("tagFQN", label.TagFQN), zap.Error(err))
		return err
	}
	if tag.Deprecated {
		return fmt.Errorf("%w: %s is deprecated", library.ErrTagNotFound, label.TagFQN)
	}

	v.log.Debug("Validated tag", zap.String("tagFQN", label.TagFQN))
	return nil
}
