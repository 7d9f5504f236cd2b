package core

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofrs/uuid"
)

// PathBuilder helps construct catalog endpoint paths in a consistent way.
// It provides a fluent interface for building paths like
// "services/databaseServices/123" or "users/name/alice".
type PathBuilder struct {
	segments []string
}

func NewPathBuilder() *PathBuilder {
	return &PathBuilder{segments: []string{}}
}

// Resource adds a collection to the path (e.g., "users", "tags").
// A collection may itself contain slashes, "services/databaseServices"
// is added as is.
func (p *PathBuilder) Resource(resource string) *PathBuilder {
	p.segments = append(p.segments, resource)
	return p
}

// ID adds a UUID resource ID to the path.
func (p *PathBuilder) ID(id uuid.UUID) *PathBuilder {
	p.segments = append(p.segments, id.String())
	return p
}

// IDString adds an escaped string segment to the path.
func (p *PathBuilder) IDString(id string) *PathBuilder {
	p.segments = append(p.segments, url.PathEscape(id))
	return p
}

// ByName adds the "name/<name>" lookup used by the catalog for
// entities addressed by their fully qualified name.
func (p *PathBuilder) ByName(name string) *PathBuilder {
	p.segments = append(p.segments, "name", url.PathEscape(name))
	return p
}

// Build returns the constructed path with segments joined by "/".
func (p *PathBuilder) Build() string {
	return strings.Join(p.segments, "/")
}

// IndexedField names the i-th element of a list field, "tags[2]".
func IndexedField(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
