/*
Package sdk wires the ingestion services together. Validation works
offline; owner, service and tag references are checked against the
catalog only when a catalog URL is configured, and the scheduler
connection is opened on the first deployment.
*/
package sdk

import (
	"sync"

	"github.com/subosito/gotenv"
	"github.com/vatesfr/ingestion-sdk-go/client"
	"github.com/vatesfr/ingestion-sdk-go/internal/common/logger"
	"github.com/vatesfr/ingestion-sdk-go/pkg/config"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/catalog"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/deployer"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/ingestion"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/jsonrpc"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/library"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/normalizer"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/registry"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/searchindex"
	"github.com/vatesfr/ingestion-sdk-go/pkg/services/validator"
)

type IngestionClient struct {
	ingestionService   library.Ingestion
	registryService    library.ConnectorSchemaRegistry
	searchIndexService library.SearchIndex

	// The deployer and its JSON-RPC service are built on first use so
	// that a client used only for validation never needs a scheduler.
	deployerMu      sync.Mutex
	deployerService library.Deployer
	jsonrpcSvc      library.JSONRPC

	config *config.Config
	log    *logger.Logger
}

// Load the .env file of the working directory, if any.
func init() {
	_ = gotenv.Load()
}

func New(config *config.Config) (library.Library, error) {
	log, err := logger.New(config.Development)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(config, log)
}

// NewWithLogger is New with a caller provided logger.
func NewWithLogger(config *config.Config, log *logger.Logger) (library.Library, error) {
	var (
		entityResolver library.EntityResolver
		tagValidator   library.TagValidator
	)
	if config.CatalogURL != "" {
		restClient, err := client.New(config)
		if err != nil {
			return nil, err
		}
		entityResolver = catalog.NewEntityResolver(restClient, log.Named("catalog"))
		tagValidator = catalog.NewTagValidator(restClient, log.Named("catalog"))
	}

	registryService := registry.New(log.Named("registry"))
	validatorService := validator.New(registryService, entityResolver, tagValidator, log.Named("validator"))

	return &IngestionClient{
		ingestionService:   ingestion.New(normalizer.New(log.Named("normalizer")), validatorService, log.Named("ingestion")),
		registryService:    registryService,
		searchIndexService: searchindex.New(log.Named("searchindex")),
		config:             config,
		log:                log,
	}, nil
}

func (c *IngestionClient) Ingestion() library.Ingestion {
	return c.ingestionService
}

func (c *IngestionClient) Registry() library.ConnectorSchemaRegistry {
	return c.registryService
}

func (c *IngestionClient) SearchIndex() library.SearchIndex {
	return c.searchIndexService
}

func (c *IngestionClient) Deployer() library.Deployer {
	c.deployerMu.Lock()
	defer c.deployerMu.Unlock()
	if c.deployerService == nil {
		c.jsonrpcSvc = jsonrpc.New(c.config, c.log.Named("jsonrpc"))
		c.deployerService = deployer.New(c.jsonrpcSvc, c.log.Named("deployer"))
	}
	return c.deployerService
}

func (c *IngestionClient) Close() error {
	defer c.log.Sync()
	c.deployerMu.Lock()
	defer c.deployerMu.Unlock()
	if c.jsonrpcSvc == nil {
		return nil
	}
	return c.jsonrpcSvc.Close()
}
