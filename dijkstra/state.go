package dijkstra

import "fmt"

// State is a phase of the orchestrator state machine:
//
//	INIT → SELECTING → RELAXING → (SELECTING | DONE)
//
// SELECTING → DONE on early exit; INIT → DONE for a single-vertex graph.
type State int

const (
	StateInit State = iota
	StateSelecting
	StateRelaxing
	StateDone
)

// String returns the upper-case state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateSelecting:
		return "SELECTING"
	case StateRelaxing:
		return "RELAXING"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s State) IsTerminal() bool {
	return s == StateDone
}

// isAllowedTransition encodes the state machine edges.
func isAllowedTransition(from, to State) bool {
	switch from {
	case StateInit:
		return to == StateSelecting || to == StateDone
	case StateSelecting:
		return to == StateRelaxing || to == StateDone
	case StateRelaxing:
		return to == StateSelecting || to == StateDone
	default:
		return false
	}
}
