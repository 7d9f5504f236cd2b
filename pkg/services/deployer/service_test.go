package deployer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/payloads"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	mock_library "github.com/vatesfr/ingestion-sdk-go/pkg/services/library/mock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupDeployerTest(t *testing.T) (library.Deployer, *mock_library.MockJSONRPC) {
	ctrl := gomock.NewController(t)
	mockJSONRPC := mock_library.NewMockJSONRPC(ctrl)
	log, _ := logger.New(false)
	return New(mockJSONRPC, log), mockJSONRPC
}

func acceptedRequest() payloads.IngestionWorkflowRequest {
	interval := "0 3 * * *"
	return payloads.IngestionWorkflowRequest{
		Name:             "ingest1",
		Tags:             []payloads.TagLabel{{TagFQN: "PII.Sensitive", LabelType: payloads.LabelTypeManual, State: payloads.TagStateConfirmed}},
		ForceDeploy:      true,
		PauseWorkflow:    true,
		Concurrency:      1,
		StartDate:        payloads.NewDate(2024, time.January, 1),
		WorkflowTimezone: "UTC",
		Retries:          1,
		RetryDelay:       300,
		ScheduleInterval: &interval,
		WorkflowTimeout:  60,
		Service:          &payloads.EntityReference{Name: "mysql_prod", Type: "databaseService"},
		ConnectorConfig:  &payloads.ConnectorConfig{Host: "localhost:3306", Username: "etl"},
	}
}

func TestDeploy(t *testing.T) {
	deployer, mockJSONRPC := setupDeployerTest(t)

	mockJSONRPC.EXPECT().
		Call(gomock.Any(), core.MethodIngestionDeploy, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, method string, params map[string]any, result any, logContext ...zap.Field) error {
			assert.Equal(t, "ingest1", params["name"])
			assert.Equal(t, true, params["forceDeploy"])
			assert.Equal(t, true, params["pauseWorkflow"])
			assert.Equal(t, "2024-01-01", params["startDate"])
			assert.Equal(t, "0 3 * * *", params["scheduleInterval"])
			assert.Equal(t, []string{"PII.Sensitive"}, params["tags"])
			assert.NotContains(t, params, "endDate")

			*(result.(*payloads.DeployResult)) = payloads.DeployResult{
				WorkflowID: "wf-1",
				Paused:     true,
				Replaced:   true,
			}
			return nil
		})

	result, err := deployer.Deploy(context.Background(), acceptedRequest())
	require.NoError(t, err)
	assert.Equal(t, "ingest1", result.Name)
	assert.Equal(t, "wf-1", result.WorkflowID)
	assert.True(t, result.Paused)
	assert.True(t, result.Replaced)
}

func TestDeployErrors(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		deployer, mockJSONRPC := setupDeployerTest(t)
		mockJSONRPC.EXPECT().
			Call(gomock.Any(), core.MethodIngestionDeploy, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		result, err := deployer.Deploy(context.Background(), acceptedRequest())
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "failed to deploy ingestion workflow ingest1: connection reset")
	})

	t.Run("missing workflow id", func(t *testing.T) {
		deployer, mockJSONRPC := setupDeployerTest(t)
		mockJSONRPC.EXPECT().
			Call(gomock.Any(), core.MethodIngestionDeploy, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := deployer.Deploy(context.Background(), acceptedRequest())
		assert.ErrorContains(t, err, "did not return a workflow ID")
	})

	t.Run("unnamed request", func(t *testing.T) {
		deployer, _ := setupDeployerTest(t)
		_, err := deployer.Deploy(context.Background(), payloads.IngestionWorkflowRequest{})
		assert.Error(t, err)
	})
}

func TestUndeploy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deployer, mockJSONRPC := setupDeployerTest(t)
		mockJSONRPC.EXPECT().
			Call(gomock.Any(), core.MethodIngestionDelete, map[string]any{"name": "ingest1"}, gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, method string, params map[string]any, result any, logContext ...zap.Field) error {
				*(result.(*bool)) = true
				return nil
			})
		mockJSONRPC.EXPECT().
			ValidateResult(true, "ingestion workflow deletion", gomock.Any()).
			Return(nil)

		assert.NoError(t, deployer.Undeploy(context.Background(), "ingest1"))
	})

	t.Run("scheduler refuses", func(t *testing.T) {
		deployer, mockJSONRPC := setupDeployerTest(t)
		mockJSONRPC.EXPECT().
			Call(gomock.Any(), core.MethodIngestionDelete, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		mockJSONRPC.EXPECT().
			ValidateResult(false, "ingestion workflow deletion", gomock.Any()).
			Return(errors.New("ingestion workflow deletion returned unsuccessful status"))

		assert.Error(t, deployer.Undeploy(context.Background(), "ingest1"))
	})

	t.Run("empty name", func(t *testing.T) {
		deployer, _ := setupDeployerTest(t)
		assert.Error(t, deployer.Undeploy(context.Background(), ""))
	})
}
