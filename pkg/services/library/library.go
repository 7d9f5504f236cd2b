package library

type Library interface {
	Ingestion() Ingestion
	Registry() ConnectorSchemaRegistry
	SearchIndex() SearchIndex
	Deployer() Deployer
	Close() error
}
