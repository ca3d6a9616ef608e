package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jinzhu/now"
)

var (
	ErrMessageTooShort      = errors.New("message must be at least 10 characters")
	ErrMessageTooLong       = errors.New("message must be at most 1000 characters")
	ErrInvalidDate          = errors.New("date must be a valid calendar date (YYYY-MM-DD)")
	ErrDateInPast           = errors.New("booking date cannot be in the past")
	ErrInvalidQueueNumber   = errors.New("queue number must be positive")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrTransitionNotAllowed = errors.New("booking status transition not allowed")
)

const (
	MinMessageLength = 10
	MaxMessageLength = 1000
	DayLayout        = "2006-01-02"
)

type Message struct {
	value string
}

func NewMessage(s string) (Message, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinMessageLength {
		return Message{}, ErrMessageTooShort
	}
	if n > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{value: s}, nil
}

func (m Message) String() string {
	return m.value
}

// ServiceDay is a calendar day in the workshop's time zone.
type ServiceDay struct {
	start time.Time
}

func NewServiceDay(t time.Time, loc *time.Location) ServiceDay {
	return ServiceDay{start: now.With(t.In(loc)).BeginningOfDay()}
}

// ParseServiceDay accepts YYYY-MM-DD or an RFC3339 timestamp whose time part is dropped.
func ParseServiceDay(s string, loc *time.Location) (ServiceDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServiceDay{}, ErrInvalidDate
	}
	if t, err := time.ParseInLocation(DayLayout, s, loc); err == nil {
		return NewServiceDay(t, loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewServiceDay(t, loc), nil
	}
	return ServiceDay{}, ErrInvalidDate
}

func (d ServiceDay) Start() time.Time { return d.start }

func (d ServiceDay) End() time.Time {
	return now.With(d.start).EndOfDay()
}

func (d ServiceDay) Contains(t time.Time) bool {
	return !t.Before(d.start) && !t.After(d.End())
}

func (d ServiceDay) Before(other ServiceDay) bool {
	return d.start.Before(other.start)
}

func (d ServiceDay) Equal(other ServiceDay) bool {
	return d.start.Equal(other.start)
}

func (d ServiceDay) IsZero() bool {
	return d.start.IsZero()
}

func (d ServiceDay) String() string {
	return d.start.Format(DayLayout)
}

// EnsureNotPast rejects days strictly before today.
func (d ServiceDay) EnsureNotPast(today ServiceDay) error {
	if d.Before(today) {
		return ErrDateInPast
	}
	return nil
}

type QueueNumber int

func NewQueueNumber(n int) (QueueNumber, error) {
	if n <= 0 {
		return 0, ErrInvalidQueueNumber
	}
	return QueueNumber(n), nil
}

func (q QueueNumber) Int() int {
	return int(q)
}
