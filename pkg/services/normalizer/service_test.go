package normalizer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
)

func setupNormalizerTest(t *testing.T) library.Normalizer {
	log, err := logger.New(false)
	require.NoError(t, err)
	return New(log)
}

func minimalRaw() map[string]any {
	return map[string]any{
		"name":      "ingest1",
		"startDate": "2024-01-01",
		"service":   "svc-ref",
		"connectorConfig": map[string]any{
			"host":     "localhost:3306",
			"username": "openmetadata_user",
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	service := setupNormalizerTest(t)

	req, err := service.Normalize(minimalRaw())
	require.NoError(t, err)

	assert.Equal(t, "ingest1", req.Name)
	assert.Equal(t, payloads.NewDate(2024, time.January, 1), req.StartDate)
	assert.Equal(t, &payloads.EntityReference{Name: "svc-ref"}, req.Service)
	assert.Equal(t, 1, req.Concurrency)
	assert.Equal(t, 1, req.Retries)
	assert.Equal(t, 300, req.RetryDelay)
	assert.Equal(t, 60, req.WorkflowTimeout)
	assert.Equal(t, "UTC", req.WorkflowTimezone)
	assert.False(t, req.WorkflowCatchup)
	assert.False(t, req.ForceDeploy)
	assert.False(t, req.PauseWorkflow)
	assert.Empty(t, req.Tags)
	assert.NotNil(t, req.Tags)
	assert.Nil(t, req.DisplayName)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.IngestionType)
	assert.Nil(t, req.Owner)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.ScheduleInterval)
}

func TestNormalizeNullMeansAbsent(t *testing.T) {
	service := setupNormalizerTest(t)

	raw := minimalRaw()
	raw["concurrency"] = nil
	raw["endDate"] = nil

	req, err := service.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, req.Concurrency)
	assert.Nil(t, req.EndDate)
}

func TestNormalizeCoercion(t *testing.T) {
	service := setupNormalizerTest(t)

	t.Run("textual booleans", func(t *testing.T) {
		raw := minimalRaw()
		raw["forceDeploy"] = "true"
		raw["pauseWorkflow"] = "false"
		raw["workflowCatchup"] = true

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		assert.True(t, req.ForceDeploy)
		assert.False(t, req.PauseWorkflow)
		assert.True(t, req.WorkflowCatchup)
	})

	t.Run("numbers from JSON and text", func(t *testing.T) {
		raw := minimalRaw()
		raw["concurrency"] = float64(4)
		raw["retries"] = "3"
		raw["retryDelay"] = int64(30)
		raw["workflowTimeout"] = json.Number("120")

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, 4, req.Concurrency)
		assert.Equal(t, 3, req.Retries)
		assert.Equal(t, 30, req.RetryDelay)
		assert.Equal(t, 120, req.WorkflowTimeout)
	})

	t.Run("dates", func(t *testing.T) {
		raw := minimalRaw()
		raw["startDate"] = time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC)
		raw["endDate"] = payloads.NewDate(2024, time.April, 1)

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, payloads.NewDate(2024, time.March, 5), req.StartDate)
		assert.Equal(t, payloads.NewDate(2024, time.April, 1), *req.EndDate)
	})

	t.Run("references", func(t *testing.T) {
		ownerID := uuid.Must(uuid.NewV4())
		serviceID := uuid.Must(uuid.NewV4())
		raw := minimalRaw()
		raw["owner"] = ownerID.String()
		raw["service"] = map[string]any{
			"id":   serviceID.String(),
			"type": "databaseService",
			"name": "mysql_prod",
		}

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		require.NotNil(t, req.Owner)
		assert.Equal(t, ownerID, *req.Owner.ID)
		require.NotNil(t, req.Service)
		assert.Equal(t, serviceID, *req.Service.ID)
		assert.Equal(t, "databaseService", req.Service.Type)
		assert.Equal(t, "mysql_prod", req.Service.Name)
	})

	t.Run("tags", func(t *testing.T) {
		raw := minimalRaw()
		raw["tags"] = []any{
			"PII.Sensitive",
			map[string]any{"tagFQN": "Tier.Tier1", "labelType": "Automated", "state": "Suggested"},
		}

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, []payloads.TagLabel{
			{TagFQN: "PII.Sensitive", LabelType: payloads.LabelTypeManual, State: payloads.TagStateConfirmed},
			{TagFQN: "Tier.Tier1", LabelType: payloads.LabelTypeAutomated, State: payloads.TagStateSuggested},
		}, req.Tags)
	})

	t.Run("connector config keeps unknown keys", func(t *testing.T) {
		raw := minimalRaw()
		raw["connectorConfig"] = map[string]any{
			"host":                 "localhost:5432",
			"username":             "etl",
			"includeViews":         "true",
			"includeFilterPattern": []any{"^public$"},
			"sslmode":              "require",
		}

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		cfg := req.ConnectorConfig
		require.NotNil(t, cfg)
		assert.Equal(t, "localhost:5432", cfg.Host)
		assert.Equal(t, "etl", cfg.Username)
		require.NotNil(t, cfg.IncludeViews)
		assert.True(t, *cfg.IncludeViews)
		assert.Equal(t, []string{"^public$"}, cfg.IncludeFilterPattern)
		assert.Equal(t, map[string]any{"sslmode": "require"}, cfg.Options)
	})
}

func TestNormalizeTypeMismatch(t *testing.T) {
	service := setupNormalizerTest(t)

	t.Run("non numeric concurrency", func(t *testing.T) {
		raw := minimalRaw()
		raw["concurrency"] = "many"

		req, err := service.Normalize(raw)
		assert.Nil(t, req)

		var rejection *payloads.RejectionError
		require.True(t, errors.As(err, &rejection))
		assert.Equal(t, payloads.StageNormalize, rejection.Stage)
		require.Len(t, rejection.Violations, 1)
		assert.Equal(t, payloads.TypeMismatch, rejection.Violations[0].Kind)
		assert.Equal(t, []string{"concurrency"}, rejection.Violations[0].Fields)
	})

	t.Run("all mismatches are reported", func(t *testing.T) {
		raw := minimalRaw()
		raw["retries"] = 1.5
		raw["forceDeploy"] = "maybe"
		raw["startDate"] = "01/02/2024"
		raw["name"] = 42
		raw["schedule"] = "@daily"

		_, err := service.Normalize(raw)
		var rejection *payloads.RejectionError
		require.True(t, errors.As(err, &rejection))
		assert.Len(t, rejection.Violations, 5)
		for _, field := range []string{"retries", "forceDeploy", "startDate", "name", "schedule"} {
			assert.Len(t, rejection.ByField(field), 1, field)
		}
		assert.Len(t, rejection.ByKind(payloads.TypeMismatch), 5)
	})

	t.Run("integers out of range", func(t *testing.T) {
		raw := minimalRaw()
		raw["retries"] = 9.223372036854775807e18
		raw["concurrency"] = -1e19

		_, err := service.Normalize(raw)
		var rejection *payloads.RejectionError
		require.True(t, errors.As(err, &rejection))
		require.Len(t, rejection.Violations, 2)
		for _, field := range []string{"retries", "concurrency"} {
			violations := rejection.ByField(field)
			require.Len(t, violations, 1, field)
			assert.Equal(t, payloads.TypeMismatch, violations[0].Kind)
			assert.Contains(t, violations[0].Reason, "out of range")
		}
	})

	t.Run("largest float below the integer limit", func(t *testing.T) {
		raw := minimalRaw()
		raw["workflowTimeout"] = float64(1 << 62)

		req, err := service.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, 1<<62, req.WorkflowTimeout)
	})

	t.Run("tag of the wrong type", func(t *testing.T) {
		raw := minimalRaw()
		raw["tags"] = []any{"PII.Sensitive", 12}

		_, err := service.Normalize(raw)
		var rejection *payloads.RejectionError
		require.True(t, errors.As(err, &rejection))
		require.Len(t, rejection.ByField("tags"), 1)
		assert.Contains(t, rejection.ByField("tags")[0].Reason, "tags[1]")
	})
}

func TestNormalizeIsIdempotent(t *testing.T) {
	service := setupNormalizerTest(t)

	raw := minimalRaw()
	raw["displayName"] = "MySQL prod"
	raw["description"] = "Nightly metadata pull"
	raw["ingestionType"] = "mysql"
	raw["owner"] = map[string]any{"id": uuid.Must(uuid.NewV4()).String(), "type": "team"}
	raw["tags"] = []any{"PII.Sensitive"}
	raw["forceDeploy"] = "true"
	raw["concurrency"] = 2
	raw["endDate"] = "2024-12-31"
	raw["workflowTimezone"] = "Europe/Paris"
	raw["scheduleInterval"] = "0 3 * * *"
	raw["connectorConfig"] = map[string]any{
		"host":     "localhost:3306",
		"username": "etl",
		"password": "secret",
		"sslmode":  "require",
	}

	first, err := service.Normalize(raw)
	require.NoError(t, err)

	payload, err := first.ToPayload()
	require.NoError(t, err)
	second, err := service.Normalize(payload)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
	assert.Equal(t, first, second)
}

func TestNormalizeFirstCalendarDay(t *testing.T) {
	service := setupNormalizerTest(t)

	raw := minimalRaw()
	raw["startDate"] = "0001-01-01"

	req, err := service.Normalize(raw)
	require.NoError(t, err)
	assert.False(t, req.StartDate.IsZero())

	payload, err := req.ToPayload()
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", payload["startDate"])

	again, err := service.Normalize(payload)
	require.NoError(t, err)
	assert.Equal(t, req, again)
}

func TestFromDocument(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		raw, err := FromDocument([]byte(`
name: ingest1
startDate: 2024-01-01
forceDeploy: "false"
concurrency: 2
service:
  name: mysql_prod
  type: databaseService
connectorConfig:
  host: localhost:3306
  username: etl
`), payloads.FormatYAML)
		require.NoError(t, err)

		req, err := setupNormalizerTest(t).Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, payloads.NewDate(2024, time.January, 1), req.StartDate)
		assert.Equal(t, 2, req.Concurrency)
		assert.False(t, req.ForceDeploy)
		assert.Equal(t, "databaseService", req.Service.Type)
		assert.Equal(t, "localhost:3306", req.ConnectorConfig.Host)
	})

	t.Run("json", func(t *testing.T) {
		raw, err := FromDocument([]byte(`{"name":"ingest1","retries":0}`), payloads.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "ingest1", raw["name"])
		assert.Equal(t, float64(0), raw["retries"])
	})

	t.Run("invalid documents", func(t *testing.T) {
		_, err := FromDocument([]byte(`{`), payloads.FormatJSON)
		assert.Error(t, err)
		_, err = FromDocument([]byte("name: [unclosed"), payloads.FormatYAML)
		assert.Error(t, err)
		_, err = FromDocument([]byte(`name: x`), payloads.DocumentFormat("toml"))
		assert.Error(t, err)
	})
}
