// Package outbox drains notification_jobs into a watermill publisher. Jobs are
// written by commands in the same transaction as the change they announce.
package outbox

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	metadataJobID   = "job_id"
	metadataJobKind = "job_kind"
	metadataAttempt = "attempt"
)

type Relay struct {
	store     shared.OutboxStore
	publisher message.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewRelay(store shared.OutboxStore, publisher message.Publisher, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return &Relay{
		store:     store,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		stop:      make(chan struct{}),
	}
}

func (r *Relay) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				if _, err := r.RunOnce(context.Background()); err != nil {
					slog.Error("outbox relay iteration failed", "error", err.Error())
				}
			}
		}
	}()
	slog.Info("outbox relay started", "poll_interval", r.cfg.PollInterval.String())
}

// Stop waits for the current iteration to finish or ctx to expire.
func (r *Relay) Stop(ctx context.Context) error {
	close(r.stop)

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("outbox relay stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce publishes one batch of due jobs and reports how many were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	now := r.clock.Now()
	jobs, err := r.store.ClaimDue(ctx, now, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		msg := message.NewMessage(watermill.NewUUID(), job.Payload)
		msg.Metadata.Set(metadataJobID, job.ID.String())
		msg.Metadata.Set(metadataJobKind, job.Kind)
		msg.Metadata.Set(metadataAttempt, strconv.Itoa(job.Attempts))

		if pubErr := r.publisher.Publish(job.Topic, msg); pubErr != nil {
			giveUp := job.Attempts >= r.cfg.MaxAttempts
			retryAt := now.Add(backoff(job.Attempts, r.cfg.PollInterval))
			slog.Warn("failed to publish notification",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempt", job.Attempts,
				"give_up", giveUp,
				"error", pubErr.Error())
			if err := r.store.MarkFailed(ctx, job.ID, pubErr.Error(), retryAt, giveUp); err != nil {
				return sent, err
			}
			continue
		}

		if err := r.store.MarkSent(ctx, job.ID); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func backoff(attempt int, base time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 10 {
		attempt = 10
	}
	return time.Duration(1<<(attempt-1)) * base
}
