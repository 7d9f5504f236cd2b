package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vatesfr/ingestion-sdk-go/internal/common/core"
)

type Config struct {
	// CatalogURL is the base URL of the metadata catalog. When empty, owner,
	// service and tag references are not resolved during validation.
	CatalogURL         string
	CatalogToken       string
	InsecureSkipVerify bool
	// DeployerURL is the websocket endpoint of the scheduler JSON-RPC API.
	DeployerURL string
	// Mostly used for log level.
	Development  bool
	RetryMode    core.RetryMode
	RetryMaxTime time.Duration
}

var (
	retryModeMap = map[string]core.RetryMode{
		"none":    core.None,
		"backoff": core.Backoff,
	}
)

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - INGESTION_CATALOG_URL: the base URL of the metadata catalog.
// - INGESTION_CATALOG_TOKEN: the bearer token sent to the catalog.
// - INGESTION_INSECURE: whether to skip verifying the catalog and deployer TLS certificates.
// - INGESTION_DEPLOYER_URL: the ws:// or wss:// URL of the scheduler JSON-RPC endpoint.
// - INGESTION_DEVELOPMENT: whether to enable development mode.
// - INGESTION_RETRY_MODE: the retry mode to use. Defaults to "none". Valid values are "none", "backoff".
// - INGESTION_RETRY_MAX_TIME: the maximum time spent retrying a catalog call. Defaults to 5 minutes.
//
// None of the variables is required: validation works offline and only
// deployment needs INGESTION_DEPLOYER_URL.
func New() (*Config, error) {
	retryMode := core.None
	retryMaxTime := 5 * time.Minute

	if v := os.Getenv("INGESTION_RETRY_MODE"); v != "" {
		retry, ok := retryModeMap[v]
		if !ok {
			return nil, fmt.Errorf("INGESTION_RETRY_MODE %q is invalid, valid values are \"none\" and \"backoff\"", v)
		}
		retryMode = retry
	}

	if v := os.Getenv("INGESTION_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("INGESTION_RETRY_MAX_TIME %q is invalid: %w", v, err)
		}
		retryMaxTime = duration
	}

	insecure := false
	if v := os.Getenv("INGESTION_INSECURE"); v != "" {
		insecure, _ = strconv.ParseBool(v)
	}

	development := false
	if v := os.Getenv("INGESTION_DEVELOPMENT"); v != "" {
		development, _ = strconv.ParseBool(v)
	}

	return &Config{
		CatalogURL:         os.Getenv("INGESTION_CATALOG_URL"),
		CatalogToken:       os.Getenv("INGESTION_CATALOG_TOKEN"),
		InsecureSkipVerify: insecure,
		DeployerURL:        os.Getenv("INGESTION_DEPLOYER_URL"),
		Development:        development,
		RetryMode:          retryMode,
		RetryMaxTime:       retryMaxTime,
	}, nil
}
