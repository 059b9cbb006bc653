package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/teamsmith/hackops/internal/model"
)

// Dispatch pacing defaults. Batching keeps the mail provider under its rate
// limit; the per-batch timeout stops one slow provider call from stalling
// the whole drain.
const (
	DefaultDispatchBatchSize = 25
	DefaultBatchDelay        = 2 * time.Second
	DefaultBatchTimeout      = 30 * time.Second
)

// Mailer delivers a single team notification
type Mailer interface {
	Send(ctx context.Context, notification *model.TeamNotification) error
}

// NotificationStore is the outbox view the dispatcher needs
type NotificationStore interface {
	ListQueued(ctx context.Context, limit int) ([]*model.TeamNotification, error)
	ListByHackathon(ctx context.Context, hackathonID string) ([]*model.TeamNotification, error)
	MarkSent(ctx context.Context, id string, sentOn time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

// Dispatcher drains the notification outbox in rate-limited batches. A
// failed send never aborts a pass: it is recorded on the notification and
// collected in the returned results.
type Dispatcher struct {
	store        NotificationStore
	mailer       Mailer
	batchSize    int
	batchDelay   time.Duration
	batchTimeout time.Duration
}

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	Store        NotificationStore
	Mailer       Mailer
	BatchSize    int
	BatchDelay   time.Duration
	BatchTimeout time.Duration
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		store:        cfg.Store,
		mailer:       cfg.Mailer,
		batchSize:    cfg.BatchSize,
		batchDelay:   cfg.BatchDelay,
		batchTimeout: cfg.BatchTimeout,
	}
	if d.batchSize <= 0 {
		d.batchSize = DefaultDispatchBatchSize
	}
	if d.batchDelay <= 0 {
		d.batchDelay = DefaultBatchDelay
	}
	if d.batchTimeout <= 0 {
		d.batchTimeout = DefaultBatchTimeout
	}
	return d
}

// DispatchQueued drains deliverable notifications until the outbox is empty
// or ctx is cancelled, pausing batchDelay between batches.
func (d *Dispatcher) DispatchQueued(ctx context.Context) ([]model.DispatchResult, error) {
	results := make([]model.DispatchResult, 0)

	for {
		batch, err := d.store.ListQueued(ctx, d.batchSize)
		if err != nil {
			return results, fmt.Errorf("listing queued notifications: %w", err)
		}
		if len(batch) == 0 {
			return results, nil
		}

		results = append(results, d.dispatchBatch(ctx, batch)...)

		if len(batch) < d.batchSize {
			return results, nil
		}

		select {
		case <-ctx.Done():
			return results, ctx.Err()
		case <-time.After(d.batchDelay):
		}
	}
}

// dispatchBatch sends one batch under a shared timeout
func (d *Dispatcher) dispatchBatch(ctx context.Context, batch []*model.TeamNotification) []model.DispatchResult {
	batchCtx, cancel := context.WithTimeout(ctx, d.batchTimeout)
	defer cancel()

	results := make([]model.DispatchResult, 0, len(batch))
	for _, notification := range batch {
		result := model.DispatchResult{
			NotificationID: notification.ID,
			RecipientID:    notification.RecipientID,
		}

		if err := d.mailer.Send(batchCtx, notification); err != nil {
			result.Reason = err.Error()
			if markErr := d.store.MarkFailed(ctx, notification.ID, err.Error()); markErr != nil {
				log.Printf("[Dispatcher] Failed to record delivery failure for %s: %v", notification.ID, markErr)
			}
		} else {
			result.Sent = true
			if markErr := d.store.MarkSent(ctx, notification.ID, time.Now().UTC()); markErr != nil {
				log.Printf("[Dispatcher] Failed to record delivery for %s: %v", notification.ID, markErr)
			}
		}

		results = append(results, result)
	}

	return results
}

// ListNotifications retrieves all notifications for a hackathon
func (d *Dispatcher) ListNotifications(ctx context.Context, hackathonID string) ([]*model.TeamNotification, error) {
	return d.store.ListByHackathon(ctx, hackathonID)
}

// LogMailer is the delivery stub used until a real mail provider is wired
// in. It logs the message and reports success.
type LogMailer struct{}

// Send logs the would-be delivery
func (m *LogMailer) Send(ctx context.Context, notification *model.TeamNotification) error {
	log.Printf("[LogMailer] Would mail %s: you are on team %d with %d teammates",
		maskEmail(notification.RecipientEmail), notification.TeamNumber, len(notification.TeammateSummaries))
	return nil
}

// maskEmail masks an email address for logging
func maskEmail(email string) string {
	if len(email) <= 4 {
		return "***"
	}
	return email[:2] + "***" + email[len(email)-2:]
}
