package payloads

import (
	"fmt"
	"strings"
)

// ViolationKind classifies why a request was rejected.
type ViolationKind string

const (
	// A raw value could not be coerced to the field type.
	TypeMismatch ViolationKind = "TypeMismatch"
	// A single field rule is broken.
	FieldConstraintViolation ViolationKind = "FieldConstraintViolation"
	// A rule spanning several fields is broken.
	CrossFieldViolation ViolationKind = "CrossFieldViolation"
	// An owner, service or tag could not be found.
	UnresolvedReference ViolationKind = "UnresolvedReference"
)

type Violation struct {
	Kind   ViolationKind `json:"kind"`
	Fields []string      `json:"fields"`
	Reason string        `json:"reason"`
}

func NewViolation(kind ViolationKind, reason string, fields ...string) Violation {
	return Violation{Kind: kind, Fields: fields, Reason: reason}
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", strings.Join(v.Fields, ","), v.Reason, v.Kind)
}

// Concerns reports whether the violation names the given field.
func (v Violation) Concerns(field string) bool {
	for _, f := range v.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Stage is the assembly step that produced a rejection.
type Stage string

const (
	StageNormalize  Stage = "normalize"
	StageValidate   Stage = "validate"
	StageInvariants Stage = "invariants"
)

// RejectionError is returned for a request that is not admissible. It
// carries every violation found by the failing stage.
type RejectionError struct {
	Stage      Stage       `json:"stage"`
	Violations []Violation `json:"violations"`
}

func (e *RejectionError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("ingestion request rejected at %s: %s", e.Stage, strings.Join(parts, "; "))
}

// ByKind returns the violations of the given kind.
func (e *RejectionError) ByKind(kind ViolationKind) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// ByField returns the violations naming the given field.
func (e *RejectionError) ByField(field string) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Concerns(field) {
			out = append(out, v)
		}
	}
	return out
}

// DocumentFormat is the encoding of a request document.
type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)
