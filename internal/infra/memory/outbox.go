package memory

import (
	"context"
	"sort"
	"time"

	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const outboxLease = time.Minute

type outbox struct{ store *Store }

func (o *outbox) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	due := make([]*jobRecord, 0)
	for _, rec := range o.store.data.jobs {
		if rec.status == shared.JobStatusQueued && !rec.job.RunAt.After(now) {
			due = append(due, rec)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return before(due[i].job.RunAt, due[i].job.ID, due[j].job.RunAt, due[j].job.ID)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	claimed := make([]shared.NotificationJob, 0, len(due))
	for _, rec := range due {
		rec.job.Attempts++
		rec.job.RunAt = now.Add(outboxLease)
		claimed = append(claimed, rec.job)
	}
	return claimed, nil
}

func (o *outbox) MarkSent(ctx context.Context, id uuid.UUID) error {
	return o.update(id, func(rec *jobRecord) {
		rec.status = shared.JobStatusSent
	})
}

func (o *outbox) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool) error {
	return o.update(id, func(rec *jobRecord) {
		rec.lastError = lastError
		if giveUp {
			rec.status = shared.JobStatusFailed
			return
		}
		rec.status = shared.JobStatusQueued
		rec.job.RunAt = retryAt
	})
}

func (o *outbox) update(id uuid.UUID, fn func(rec *jobRecord)) error {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	rec, ok := o.store.data.jobs[id]
	if !ok {
		return errNotFound("notification job not found")
	}
	fn(rec)
	return nil
}

// JobStatuses reports the status of every outbox job, keyed by topic.
func (s *Store) JobStatuses() map[string][]string {
	out := map[string][]string{}
	s.read(func(data *state) {
		for _, rec := range data.jobs {
			out[rec.job.Topic] = append(out[rec.job.Topic], rec.status)
		}
	})
	return out
}
