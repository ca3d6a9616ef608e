package history

import "fmt"

// ProgressStatus tracks the service work itself, independent of the booking status.
type ProgressStatus string

const (
	StatusPending   ProgressStatus = "PENDING"
	StatusProcess   ProgressStatus = "PROCESS"
	StatusCompleted ProgressStatus = "COMPLETED"
	StatusCancelled ProgressStatus = "CANCELLED"
)

func (s ProgressStatus) String() string {
	return string(s)
}

func (s ProgressStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcess, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewProgressStatus(s string) (ProgressStatus, error) {
	status := ProgressStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var progressTransitions = map[ProgressStatus][]ProgressStatus{
	StatusPending: {StatusProcess, StatusCompleted, StatusCancelled},
	StatusProcess: {StatusCompleted, StatusCancelled},
}

func (s ProgressStatus) CanTransitionTo(next ProgressStatus) bool {
	for _, allowed := range progressTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ProgressStatus) validateTransition(next ProgressStatus) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, next)
	}
	return nil
}
