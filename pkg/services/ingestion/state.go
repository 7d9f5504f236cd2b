package ingestion

// State is the position of a request in the assembly pipeline.
//
//	Raw -> Normalized -> SingleFieldValidated -> Accepted
//
// Any stage may move the request to Rejected instead. Accepted and
// Rejected are terminal.
type State int

const (
	StateRaw State = iota
	StateNormalized
	StateSingleFieldValidated
	StateAccepted
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateRaw:
		return "Raw"
	case StateNormalized:
		return "Normalized"
	case StateSingleFieldValidated:
		return "SingleFieldValidated"
	case StateAccepted:
		return "Accepted"
	case StateRejected:
		return "Rejected"
	}
	return "Unknown"
}

func (s State) Terminal() bool {
	return s == StateAccepted || s == StateRejected
}

// next returns the state reached after a successful step.
func (s State) next() State {
	switch s {
	case StateRaw:
		return StateNormalized
	case StateNormalized:
		return StateSingleFieldValidated
	case StateSingleFieldValidated:
		return StateAccepted
	}
	return s
}
