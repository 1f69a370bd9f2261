package valueobjects

import "fmt"

type Status string

const (
	StatusNew        Status = "new"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusCancelled  Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusCancelled:  true,
}

// statusTransitions is the complaint lifecycle graph. Closed and cancelled
// are terminal. Resolved may go back to in_progress (reopen).
var statusTransitions = map[Status][]Status{
	StatusNew: {
		StatusAssigned,
		StatusCancelled,
	},
	StatusAssigned: {
		StatusInProgress,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusResolved,
		StatusCancelled,
	},
	StatusResolved: {
		StatusClosed,
		StatusInProgress,
	},
	StatusClosed:    {},
	StatusCancelled: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && validStatuses[s]
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

// AllStatuses returns every defined status in lifecycle order. The board
// projection uses this to materialize one column per status.
func AllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusAssigned,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
		StatusCancelled,
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return st, nil
}
