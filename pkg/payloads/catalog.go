package payloads

import "github.com/gofrs/uuid"

// CatalogEntity is the subset of a catalog entity the resolvers read.
type CatalogEntity struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	FullyQualifiedName string    `json:"fullyQualifiedName,omitempty"`
	DisplayName        string    `json:"displayName,omitempty"`
	Description        string    `json:"description,omitempty"`
	Href               string    `json:"href,omitempty"`
	Deleted            bool      `json:"deleted,omitempty"`
}

// Reference returns the canonical reference to the entity.
func (e CatalogEntity) Reference(entityType string) EntityReference {
	id := e.ID
	name := e.FullyQualifiedName
	if name == "" {
		name = e.Name
	}
	return EntityReference{
		ID:          &id,
		Type:        entityType,
		Name:        name,
		Description: e.Description,
		DisplayName: e.DisplayName,
		Href:        e.Href,
	}
}

// CatalogTag is a classification tag as served by the catalog.
type CatalogTag struct {
	Name               string `json:"name"`
	FullyQualifiedName string `json:"fullyQualifiedName"`
	Description        string `json:"description,omitempty"`
	Deprecated         bool   `json:"deprecated,omitempty"`
}
