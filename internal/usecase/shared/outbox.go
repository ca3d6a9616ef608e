package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/shared/outbox_mock.go -package=sharedmock

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// Notification topics written to the outbox by commands.
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicHistoryCreated   = "history.created"
	TopicHistoryUpdated   = "history.status_changed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

// OutboxStore is drained by the relay outside of any usecase transaction.
type OutboxStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool) error
}
