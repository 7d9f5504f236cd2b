package core

// EmptyParams is an empty struct that can be used
// to represent no parameters instead of passing
// an empty struct like struct{}{}. We can then
// check using reflect if the parameter is empty
var EmptyParams struct{}

// EntityCollections maps an entity reference type to the catalog
// collection that serves it.
var EntityCollections = map[string]string{
	"databaseService":  "services/databaseServices",
	"messagingService": "services/messagingServices",
	"dashboardService": "services/dashboardServices",
	"pipelineService":  "services/pipelineServices",
	"user":             "users",
	"team":             "teams",
}

// OwnerTypes are the entity types an owner reference may point to.
var OwnerTypes = []string{"team", "user"}

// ServiceTypes are the entity types a service reference may point to.
var ServiceTypes = []string{"dashboardService", "databaseService", "messagingService", "pipelineService"}
