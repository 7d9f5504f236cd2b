package integration

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/vatesfr/ingestion-sdk-go/pkg/config"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"github.com/vatesfr/ingestion-sdk-go/sdk"
)

// Global client instance that will be reused across all tests
var (
	globalClient      library.Library
	clientMutex       sync.Mutex
	clientInitialized bool
)

const trueStr = "true"

func initializeClient() (library.Library, error) {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if clientInitialized && globalClient != nil {
		return globalClient, nil
	}

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	client, err := sdk.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion client: %w", err)
	}

	globalClient = client
	clientInitialized = true

	return client, nil
}

type TestClient struct {
	Client       library.Library
	Service      string
	Owner        string
	Tag          string
	Deployer     bool
	TestPrefix   string
	SkipTeardown bool
}

func Setup(t *testing.T) *TestClient {
	if os.Getenv("INGESTION_INTEGRATION_TESTS") != trueStr {
		t.Skip("Skipping integration test. Set INGESTION_INTEGRATION_TESTS=" + trueStr + " to run")
	}

	client, err := initializeClient()
	if err != nil {
		t.Fatalf("Failed to initialize client: %v", err)
	}

	testPrefix := os.Getenv("INGESTION_TEST_PREFIX")
	if testPrefix == "" {
		testPrefix = "go-sdk-test"
	}

	tc := &TestClient{
		Client:       client,
		Service:      os.Getenv("INGESTION_TEST_SERVICE"),
		Owner:        os.Getenv("INGESTION_TEST_OWNER"),
		Tag:          os.Getenv("INGESTION_TEST_TAG"),
		Deployer:     os.Getenv("INGESTION_DEPLOYER_URL") != "",
		TestPrefix:   testPrefix,
		SkipTeardown: os.Getenv("INGESTION_SKIP_TEARDOWN") == trueStr,
	}

	tc.validateEnvironment(t)

	return tc
}

func (tc *TestClient) validateEnvironment(t *testing.T) {
	missingVars := []string{}

	if os.Getenv("INGESTION_CATALOG_URL") == "" {
		missingVars = append(missingVars, "INGESTION_CATALOG_URL")
	}
	if tc.Service == "" {
		missingVars = append(missingVars, "INGESTION_TEST_SERVICE")
	}
	if !tc.Deployer {
		t.Log("INGESTION_DEPLOYER_URL is not set. Deployment tests will be skipped.")
	}

	if len(missingVars) > 0 {
		t.Fatalf("Missing required environment variables: %v", missingVars)
	}
}

func (tc *TestClient) GenerateWorkflowName(kind string) string {
	return fmt.Sprintf("%s-%s-%d", tc.TestPrefix, kind, os.Getpid())
}

// Request returns a raw request bound to the configured catalog service.
func (tc *TestClient) Request(name string) map[string]any {
	raw := map[string]any{
		"name":             name,
		"startDate":        "2024-01-01",
		"scheduleInterval": "0 3 * * *",
		"pauseWorkflow":    true,
		"service":          map[string]any{"name": tc.Service, "type": "databaseService"},
		"connectorConfig": map[string]any{
			"host":     os.Getenv("INGESTION_TEST_HOST"),
			"username": os.Getenv("INGESTION_TEST_USERNAME"),
		},
	}
	if tc.Owner != "" {
		raw["owner"] = tc.Owner
	}
	if tc.Tag != "" {
		raw["tags"] = []any{tc.Tag}
	}
	return raw
}
