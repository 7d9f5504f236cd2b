package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
)

func setupRegistryTest(t *testing.T) library.ConnectorSchemaRegistry {
	log, _ := logger.New(false)
	return New(log)
}

func TestDefaultShapesCoverEveryIngestionType(t *testing.T) {
	registry := setupRegistryTest(t)

	for _, ingestionType := range payloads.IngestionTypes {
		shape, ok := registry.Shape(ingestionType)
		assert.True(t, ok, ingestionType)
		assert.Equal(t, "databaseService", shape.ServiceType, ingestionType)
		assert.NotEmpty(t, shape.Required, ingestionType)
	}
	assert.Len(t, registry.Types(), len(payloads.IngestionTypes))
}

func TestShape(t *testing.T) {
	registry := setupRegistryTest(t)

	t.Run("relational connector", func(t *testing.T) {
		shape, ok := registry.Shape(payloads.IngestionTypeMySQL)
		assert.True(t, ok)
		assert.Equal(t, []string{"host", "username"}, shape.Required)
		assert.Empty(t, shape.Forbidden)
	})

	t.Run("bigquery forbids password", func(t *testing.T) {
		shape, ok := registry.Shape(payloads.IngestionTypeBigQueryUsage)
		assert.True(t, ok)
		assert.Equal(t, []string{"database"}, shape.Required)
		assert.Equal(t, []string{"password"}, shape.Forbidden)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, ok := registry.Shape(payloads.IngestionType("mongodb"))
		assert.False(t, ok)
	})
}

func TestRegister(t *testing.T) {
	registry := setupRegistryTest(t)

	custom := payloads.ConnectorShape{ServiceType: "databaseService", Required: []string{"host", "port"}}
	registry.Register("clickhouse", custom)

	shape, ok := registry.Shape("clickhouse")
	assert.True(t, ok)
	assert.Equal(t, custom, shape)
	assert.Contains(t, registry.Types(), payloads.IngestionType("clickhouse"))

	registry.Register(payloads.IngestionTypeMySQL, custom)
	shape, _ = registry.Shape(payloads.IngestionTypeMySQL)
	assert.Equal(t, custom, shape)
}

func TestConcurrentAccess(t *testing.T) {
	registry := setupRegistryTest(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("clickhouse", payloads.ConnectorShape{Required: []string{"host"}})
		}()
		go func() {
			defer wg.Done()
			_, _ = registry.Shape(payloads.IngestionTypePostgres)
			_ = registry.Types()
		}()
	}
	wg.Wait()

	_, ok := registry.Shape("clickhouse")
	assert.True(t, ok)
}
