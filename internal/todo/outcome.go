package todo

// Outcome classifies a list query result.
type Outcome int

const (
	// OutcomeEmpty means the window holds nothing, whatever lies past it.
	OutcomeEmpty Outcome = iota
	// OutcomeComplete means the window is the last page of the filtered todos.
	OutcomeComplete
	// OutcomePartial means more filtered todos exist past the window.
	OutcomePartial
)

// Classify maps a window size and hasMore to an Outcome.
func Classify(windowSize int, hasMore bool) Outcome {
	switch {
	case windowSize == 0:
		return OutcomeEmpty
	case hasMore:
		return OutcomePartial
	default:
		return OutcomeComplete
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomePartial:
		return "partial"
	default:
		return "empty"
	}
}
