package models

// OutcomeKind описывает, чем закончился поиск
type OutcomeKind int

const (
	OutcomeFound OutcomeKind = iota
	OutcomeEmpty
	OutcomeUnresolved
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome - результат одного поиска. Report заполнен только для OutcomeFound,
// Err - для OutcomeUnresolved и OutcomeFailed.
type Outcome struct {
	Kind   OutcomeKind
	Report *AccidentReport
	Err    error
}
