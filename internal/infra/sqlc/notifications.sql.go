package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, status, run_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5, $5)
`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	Status  string
	RunAt   time.Time
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.Status, arg.RunAt)
	return err
}

// Claimed jobs are leased by pushing run_at forward, so a relay that dies
// mid-batch hands them back once the lease expires.
const claimDueNotificationJobs = `
WITH due AS (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at, id
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
UPDATE notification_jobs j
SET attempts = j.attempts + 1, run_at = $2, updated_at = $1
FROM due
WHERE j.id = due.id
RETURNING j.id, j.kind, j.topic, j.payload, j.attempts, j.run_at
`

type ClaimDueNotificationJobsParams struct {
	Now        time.Time
	LeaseUntil time.Time
	Limit      int32
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.LeaseUntil, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.Attempts,
			&i.RunAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, last_error = $3, run_at = COALESCE($4, run_at), updated_at = now()
WHERE id = $1
`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError, arg.RunAt)
	return err
}
