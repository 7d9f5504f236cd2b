package core

type RetryMode int

const (
	None RetryMode = iota // specifies that no retries will be made
	// Specifies that exponential backoff will be used for catalog lookups that fail
	// with a transport error or a 5xx status. A catalog behind a load balancer that
	// is being redeployed answers 502/503 for a few seconds, and a validation call
	// should not be rejected because of that.
	Backoff
)

const (
	CatalogAPIPath = "api/v1"
)

// Defaults applied by the normalizer to absent optional fields.
const (
	DefaultConcurrency      = 1
	DefaultRetries          = 1
	DefaultRetryDelay       = 300
	DefaultWorkflowTimeout  = 60
	DefaultWorkflowTimezone = "UTC"

	NameMinLength = 1
	NameMaxLength = 256
)

// JSON-RPC methods exposed by the scheduler.
const (
	MethodIngestionDeploy = "ingestion.deploy"
	MethodIngestionDelete = "ingestion.delete"
)
