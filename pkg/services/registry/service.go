package registry

import (
	"sort"
	"sync"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"go.uber.org/zap"
)

const databaseService = "databaseService"

var (
	relationalShape = payloads.ConnectorShape{
		ServiceType: databaseService,
		Required:    []string{"host", "username"},
	}
	// BigQuery authenticates with service account credentials passed in
	// the connector options, the project id goes in database.
	bigQueryShape = payloads.ConnectorShape{
		ServiceType: databaseService,
		Required:    []string{"database"},
		Forbidden:   []string{"password"},
	}
	catalogShape = payloads.ConnectorShape{
		ServiceType: databaseService,
		Required:    []string{"database"},
	}
)

// DefaultShapes returns the shapes known out of the box.
func DefaultShapes() map[payloads.IngestionType]payloads.ConnectorShape {
	return map[payloads.IngestionType]payloads.ConnectorShape{
		payloads.IngestionTypeBigQuery:       bigQueryShape,
		payloads.IngestionTypeBigQueryUsage:  bigQueryShape,
		payloads.IngestionTypeRedshift:       relationalShape,
		payloads.IngestionTypeRedshiftUsage:  relationalShape,
		payloads.IngestionTypeSnowflake:      relationalShape,
		payloads.IngestionTypeSnowflakeUsage: relationalShape,
		payloads.IngestionTypeHive:           relationalShape,
		payloads.IngestionTypeMSSQL:          relationalShape,
		payloads.IngestionTypeMySQL:          relationalShape,
		payloads.IngestionTypePostgres:       relationalShape,
		payloads.IngestionTypePresto:         relationalShape,
		payloads.IngestionTypeTrino:          relationalShape,
		payloads.IngestionTypeVertica:        relationalShape,
		payloads.IngestionTypeOracle:         relationalShape,
		payloads.IngestionTypeAthena:         catalogShape,
		payloads.IngestionTypeGlue:           catalogShape,
	}
}

type Service struct {
	mu     sync.RWMutex
	shapes map[payloads.IngestionType]payloads.ConnectorShape
	log    *logger.Logger
}

// New returns a registry preloaded with DefaultShapes.
func New(log *logger.Logger) library.ConnectorSchemaRegistry {
	return &Service{
		shapes: DefaultShapes(),
		log:    log,
	}
}

func (s *Service) Shape(ingestionType payloads.IngestionType) (payloads.ConnectorShape, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shape, ok := s.shapes[ingestionType]
	return shape, ok
}

// Register adds or replaces the shape of an ingestion type.
func (s *Service) Register(ingestionType payloads.IngestionType, shape payloads.ConnectorShape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, replaced := s.shapes[ingestionType]
	s.shapes[ingestionType] = shape
	s.log.Debug("Registered connector shape",
		zap.String("ingestionType", string(ingestionType)),
		zap.Strings("required", shape.Required),
		zap.Bool("replaced", replaced))
}

func (s *Service) Types() []payloads.IngestionType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]payloads.IngestionType, 0, len(s.shapes))
	for t := range s.shapes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
