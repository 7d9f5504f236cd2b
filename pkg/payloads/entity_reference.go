package payloads

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// EntityReference points to another catalog entity (an owner, a
// service...). The SDK does not interpret it beyond asking a resolver
// for its canonical form.
type EntityReference struct {
	ID          *uuid.UUID `json:"id,omitempty" mapstructure:"id"`
	Type        string     `json:"type,omitempty" mapstructure:"type"`
	Name        string     `json:"name,omitempty" mapstructure:"name"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	DisplayName string     `json:"displayName,omitempty" mapstructure:"displayName"`
	Href        string     `json:"href,omitempty" mapstructure:"href"`
}

// ReferenceFromString turns an opaque string into a reference: a UUID
// becomes the ID, anything else the name.
func ReferenceFromString(s string) EntityReference {
	if id, err := uuid.FromString(s); err == nil {
		return EntityReference{ID: &id}
	}
	return EntityReference{Name: s}
}

// IsEmpty reports whether the reference carries neither an ID nor a name.
func (r EntityReference) IsEmpty() bool {
	return (r.ID == nil || r.ID.IsNil()) && r.Name == ""
}

func (r EntityReference) String() string {
	key := r.Name
	if r.ID != nil && !r.ID.IsNil() {
		key = r.ID.String()
	}
	if r.Type == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.Type, key)
}

func (r EntityReference) clone() EntityReference {
	out := r
	if r.ID != nil {
		id := *r.ID
		out.ID = &id
	}
	return out
}
