package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Trigger names the event that moves a booking out of its current status.
type Trigger string

const (
	TriggerHistoryCreated Trigger = "history_created"
	TriggerCancel         Trigger = "cancel"
)

// Every status without an entry is terminal.
var transitions = map[Status]map[Trigger]Status{
	StatusPending: {
		TriggerHistoryCreated: StatusConfirmed,
		TriggerCancel:         StatusCancelled,
	},
}

func (s Status) Next(t Trigger) (Status, error) {
	if next, ok := transitions[s][t]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s booking cannot %s", ErrTransitionNotAllowed, s, t.describe())
}

func (t Trigger) describe() string {
	switch t {
	case TriggerHistoryCreated:
		return "receive a service history"
	case TriggerCancel:
		return "be cancelled"
	default:
		return string(t)
	}
}
