package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	mock_library "github.com/vatesfr/ingestion-sdk-go/pkg/services/library/mock"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/normalizer"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/registry"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/validator"
	"go.uber.org/mock/gomock"
)

func setupIngestionTest(t *testing.T) library.Ingestion {
	log, err := logger.New(true)
	require.NoError(t, err)
	return New(
		normalizer.New(log),
		validator.New(registry.New(log), nil, nil, log),
		log,
	)
}

func scenarioRaw() map[string]any {
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

func rejection(t *testing.T, err error) *payloads.RejectionError {
	t.Helper()
	var rejected *payloads.RejectionError
	require.ErrorAs(t, err, &rejected)
	return rejected
}

func TestAssembleAcceptsWithDefaults(t *testing.T) {
	service := setupIngestionTest(t)

	req, err := service.Assemble(context.Background(), scenarioRaw())
	require.NoError(t, err)

	assert.Equal(t, "ingest1", req.Name)
	assert.Equal(t, payloads.NewDate(2024, time.January, 1), req.StartDate)
	assert.Equal(t, 1, req.Concurrency)
	assert.Equal(t, 1, req.Retries)
	assert.Equal(t, 300, req.RetryDelay)
	assert.Equal(t, 60, req.WorkflowTimeout)
	assert.Equal(t, "UTC", req.WorkflowTimezone)
	assert.False(t, req.WorkflowCatchup)
	assert.False(t, req.ForceDeploy)
	assert.False(t, req.PauseWorkflow)
	assert.Empty(t, req.Tags)
}

func TestAssembleRejectsEndDateBeforeStartDate(t *testing.T) {
	service := setupIngestionTest(t)
	raw := scenarioRaw()
	raw["endDate"] = "2023-12-31"

	_, err := service.Assemble(context.Background(), raw)
	rejected := rejection(t, err)

	assert.Equal(t, payloads.StageInvariants, rejected.Stage)
	require.Len(t, rejected.Violations, 1)
	assert.Equal(t, payloads.CrossFieldViolation, rejected.Violations[0].Kind)
	assert.ElementsMatch(t, []string{"startDate", "endDate"}, rejected.Violations[0].Fields)
}

func TestAssembleAcceptsEndDateOnStartDate(t *testing.T) {
	service := setupIngestionTest(t)
	raw := scenarioRaw()
	raw["endDate"] = "2024-01-01"

	req, err := service.Assemble(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, req.EndDate)
	assert.True(t, req.EndDate.Equal(req.StartDate))
}

func TestAssembleConcurrency(t *testing.T) {
	service := setupIngestionTest(t)

	for _, concurrency := range []any{0, -1, "0", float64(-5)} {
		raw := scenarioRaw()
		raw["concurrency"] = concurrency

		_, err := service.Assemble(context.Background(), raw)
		rejected := rejection(t, err)
		assert.Equal(t, payloads.StageValidate, rejected.Stage)
		require.Len(t, rejected.Violations, 1)
		assert.Equal(t, payloads.FieldConstraintViolation, rejected.Violations[0].Kind)
		assert.Equal(t, []string{"concurrency"}, rejected.Violations[0].Fields)
	}

	raw := scenarioRaw()
	raw["concurrency"] = 8
	req, err := service.Assemble(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, 8, req.Concurrency)
}

func TestAssembleNameLength(t *testing.T) {
	service := setupIngestionTest(t)

	tests := []struct {
		name     string
		length   int
		accepted bool
	}{
		{"empty", 0, false},
		{"single character", 1, true},
		{"upper bound", 256, true},
		{"over upper bound", 257, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := scenarioRaw()
			raw["name"] = strings.Repeat("a", tc.length)

			req, err := service.Assemble(context.Background(), raw)
			if tc.accepted {
				require.NoError(t, err)
				assert.Len(t, req.Name, tc.length)
				return
			}
			rejected := rejection(t, err)
			assert.Equal(t, payloads.StageValidate, rejected.Stage)
			assert.Len(t, rejected.ByField("name"), 1)
		})
	}
}

func TestAssembleScheduleInterval(t *testing.T) {
	service := setupIngestionTest(t)

	raw := scenarioRaw()
	raw["scheduleInterval"] = "* * * * *"
	req, err := service.Assemble(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, req.ScheduleInterval)
	assert.Equal(t, "* * * * *", *req.ScheduleInterval)

	raw = scenarioRaw()
	raw["scheduleInterval"] = "not-a-cron"
	_, err = service.Assemble(context.Background(), raw)
	rejected := rejection(t, err)
	assert.Equal(t, payloads.StageValidate, rejected.Stage)
	require.Len(t, rejected.Violations, 1)
	assert.Equal(t, payloads.FieldConstraintViolation, rejected.Violations[0].Kind)
	assert.Equal(t, []string{"scheduleInterval"}, rejected.Violations[0].Fields)
}

func TestAssembleTypeMismatchStopsBeforeValidation(t *testing.T) {
	service := setupIngestionTest(t)
	raw := scenarioRaw()
	raw["concurrency"] = "many"
	raw["name"] = ""

	_, err := service.Assemble(context.Background(), raw)
	rejected := rejection(t, err)

	assert.Equal(t, payloads.StageNormalize, rejected.Stage)
	require.Len(t, rejected.Violations, 1)
	assert.Equal(t, payloads.TypeMismatch, rejected.Violations[0].Kind)
	assert.Empty(t, rejected.ByField("name"))
}

func TestAssembleCollectsAllFieldViolations(t *testing.T) {
	service := setupIngestionTest(t)
	raw := scenarioRaw()
	raw["name"] = ""
	raw["concurrency"] = 0
	raw["retries"] = -1
	raw["workflowTimezone"] = "Nowhere/Land"
	raw["endDate"] = "2023-12-31"

	_, err := service.Assemble(context.Background(), raw)
	rejected := rejection(t, err)

	// Cross-field rules only run on records that passed the field rules.
	assert.Equal(t, payloads.StageValidate, rejected.Stage)
	assert.Len(t, rejected.Violations, 4)
	assert.Empty(t, rejected.ByKind(payloads.CrossFieldViolation))
}

func TestAssembleIsIdempotent(t *testing.T) {
	service := setupIngestionTest(t)
	raw := scenarioRaw()
	raw["displayName"] = "Nightly MySQL"
	raw["ingestionType"] = "mysql"
	raw["tags"] = []any{"PII.Sensitive", map[string]any{"tagFQN": "Tier.Tier1", "labelType": "Derived"}}
	raw["workflowCatchup"] = "true"
	raw["scheduleInterval"] = "0 3 * * *"
	raw["connectorConfig"].(map[string]any)["sslMode"] = "require"

	first, err := service.Assemble(context.Background(), raw)
	require.NoError(t, err)

	payload, err := first.ToPayload()
	require.NoError(t, err)
	second, err := service.Assemble(context.Background(), payload)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestAssembleReturnsIndependentCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNormalizer := mock_library.NewMockNormalizer(ctrl)
	mockValidator := mock_library.NewMockValidator(ctrl)
	service := New(mockNormalizer, mockValidator, logger.NewNop())

	normalized := &payloads.IngestionWorkflowRequest{
		Name:            "ingest1",
		Tags:            []payloads.TagLabel{{TagFQN: "PII.Sensitive"}},
		Service:         &payloads.EntityReference{Name: "svc-ref"},
		ConnectorConfig: &payloads.ConnectorConfig{Host: "localhost"},
	}
	mockNormalizer.EXPECT().Normalize(gomock.Any()).Return(normalized, nil)
	mockValidator.EXPECT().ValidateFields(gomock.Any(), normalized).Return(nil, nil)
	mockValidator.EXPECT().CheckInvariants(normalized).Return(nil)

	req, err := service.Assemble(context.Background(), map[string]any{})
	require.NoError(t, err)

	normalized.Tags[0].TagFQN = "changed"
	normalized.Service.Name = "changed"
	normalized.ConnectorConfig.Host = "changed"
	assert.Equal(t, "PII.Sensitive", req.Tags[0].TagFQN)
	assert.Equal(t, "svc-ref", req.Service.Name)
	assert.Equal(t, "localhost", req.ConnectorConfig.Host)
}

func TestAssembleErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNormalizer := mock_library.NewMockNormalizer(ctrl)
	mockValidator := mock_library.NewMockValidator(ctrl)
	service := New(mockNormalizer, mockValidator, logger.NewNop())
	ctx := context.Background()

	t.Run("resolver failure is not a rejection", func(t *testing.T) {
		normalized := &payloads.IngestionWorkflowRequest{Name: "ingest1"}
		mockNormalizer.EXPECT().Normalize(gomock.Any()).Return(normalized, nil)
		mockValidator.EXPECT().ValidateFields(ctx, normalized).Return(nil, errors.New("catalog unavailable"))

		_, err := service.Assemble(ctx, map[string]any{})
		require.Error(t, err)
		var rejected *payloads.RejectionError
		assert.False(t, errors.As(err, &rejected))
		assert.ErrorContains(t, err, "catalog unavailable")
	})

	t.Run("unexpected normalizer error", func(t *testing.T) {
		mockNormalizer.EXPECT().Normalize(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := service.Assemble(ctx, map[string]any{})
		assert.ErrorContains(t, err, "failed to normalize ingestion request: boom")
	})

	t.Run("unresolved reference", func(t *testing.T) {
		normalized := &payloads.IngestionWorkflowRequest{Name: "ingest1"}
		violation := payloads.NewViolation(payloads.UnresolvedReference, "service databaseService:missing does not exist", "service")
		mockNormalizer.EXPECT().Normalize(gomock.Any()).Return(normalized, nil)
		mockValidator.EXPECT().ValidateFields(ctx, normalized).Return([]payloads.Violation{violation}, nil)

		_, err := service.Assemble(ctx, map[string]any{})
		rejected := rejection(t, err)
		assert.Equal(t, payloads.StageValidate, rejected.Stage)
		assert.Equal(t, []payloads.Violation{violation}, rejected.Violations)
	})
}

func TestAssembleDocument(t *testing.T) {
	service := setupIngestionTest(t)

	t.Run("yaml", func(t *testing.T) {
		doc := []byte(`
name: nightly
ingestionType: postgres
startDate: 2024-03-01
scheduleInterval: "0 */6 * * *"
pauseWorkflow: true
service:
  name: pg_prod
  type: databaseService
connectorConfig:
  host: db:5432
  username: reader
  includeViews: true
`)
		req, err := service.AssembleDocument(context.Background(), doc, payloads.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "nightly", req.Name)
		assert.True(t, req.PauseWorkflow)
		require.NotNil(t, req.ConnectorConfig.IncludeViews)
		assert.True(t, *req.ConnectorConfig.IncludeViews)
	})

	t.Run("json with wrong service type", func(t *testing.T) {
		doc := []byte(`{
			"name": "nightly",
			"ingestionType": "postgres",
			"startDate": "2024-03-01",
			"service": {"name": "kafka", "type": "messagingService"},
			"connectorConfig": {"host": "db:5432", "username": "reader"}
		}`)
		_, err := service.AssembleDocument(context.Background(), doc, payloads.FormatJSON)
		rejected := rejection(t, err)
		assert.Equal(t, payloads.StageInvariants, rejected.Stage)
		require.Len(t, rejected.Violations, 1)
		assert.Equal(t, []string{"ingestionType", "service"}, rejected.Violations[0].Fields)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := service.AssembleDocument(context.Background(), []byte("{"), payloads.FormatJSON)
		require.Error(t, err)
		var rejected *payloads.RejectionError
		assert.False(t, errors.As(err, &rejected))
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Raw", StateRaw.String())
	assert.Equal(t, "Normalized", StateRaw.next().String())
	assert.Equal(t, "SingleFieldValidated", StateNormalized.next().String())
	assert.Equal(t, "Accepted", StateSingleFieldValidated.next().String())
	assert.Equal(t, StateAccepted, StateAccepted.next())
	assert.True(t, StateRejected.Terminal())
	assert.False(t, StateNormalized.Terminal())
}
