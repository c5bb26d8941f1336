package todo

// State selects which todos a list query sees.
type State int

const (
	// StateUnfinished keeps todos that are not done. It is the zero value and the default.
	StateUnfinished State = iota
	// StateAll keeps every todo.
	StateAll
)

// ParseState resolves a state name. Unknown or empty names resolve to StateUnfinished.
func ParseState(name string) State {
	switch name {
	case "all":
		return StateAll
	case "unfinished":
		return StateUnfinished
	default:
		return StateUnfinished
	}
}

func (s State) String() string {
	switch s {
	case StateAll:
		return "all"
	default:
		return "unfinished"
	}
}

// Match reports whether t belongs to the state's subset.
func (s State) Match(t Todo) bool {
	switch s {
	case StateAll:
		return true
	default:
		return !t.Done
	}
}

// Filter returns the todos matching s, preserving order. The input is not modified.
func (s State) Filter(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if s.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// DoneFilter returns the done value a store should filter on, or nil for no filter.
func (s State) DoneFilter() *bool {
	if s == StateAll {
		return nil
	}
	done := false
	return &done
}
