package payloads

import "strings"

type LabelType string

const (
	LabelTypeManual     LabelType = "Manual"
	LabelTypePropagated LabelType = "Propagated"
	LabelTypeAutomated  LabelType = "Automated"
	LabelTypeDerived    LabelType = "Derived"
)

var labelTypes = map[LabelType]struct{}{
	LabelTypeManual:     {},
	LabelTypePropagated: {},
	LabelTypeAutomated:  {},
	LabelTypeDerived:    {},
}

func (t LabelType) IsValid() bool {
	_, ok := labelTypes[t]
	return ok
}

type TagState string

const (
	TagStateSuggested TagState = "Suggested"
	TagStateConfirmed TagState = "Confirmed"
)

func (s TagState) IsValid() bool {
	return s == TagStateSuggested || s == TagStateConfirmed
}

// TagLabel attaches a classification tag to the workflow.
type TagLabel struct {
	TagFQN    string    `json:"tagFQN" mapstructure:"tagFQN"`
	LabelType LabelType `json:"labelType" mapstructure:"labelType"`
	State     TagState  `json:"state" mapstructure:"state"`
	Href      string    `json:"href,omitempty" mapstructure:"href"`
}

// Segments splits the fully qualified name, "PII.Sensitive" gives
// ["PII", "Sensitive"].
func (l TagLabel) Segments() []string {
	if l.TagFQN == "" {
		return nil
	}
	return strings.Split(l.TagFQN, ".")
}
