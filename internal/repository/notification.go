package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

// NotificationRepository handles the team notification outbox
type NotificationRepository struct {
	db database.Database
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// EnqueueBatch writes a set of queued notifications atomically. An
// assignment run either queues a message for every assigned participant or
// none at all.
func (r *NotificationRepository) EnqueueBatch(ctx context.Context, notifications []*model.TeamNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	batch := database.NewAtomicBatch()
	for _, n := range notifications {
		batch.Add(
			`CREATE team_notification SET hackathon_id = $hid, recipient_id = $recipient_id, recipient_email = $recipient_email, team_number = $team_number, teammate_summaries = $teammate_summaries, status = $status, attempts = 0, created_on = time::now(), updated_on = time::now()`,
			map[string]interface{}{
				"hid":                n.HackathonID,
				"recipient_id":       n.RecipientID,
				"recipient_email":    n.RecipientEmail,
				"team_number":        n.TeamNumber,
				"teammate_summaries": n.TeammateSummaries,
				"status":             model.NotificationStatusQueued,
			},
		)
	}

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to enqueue notifications: %w", err)
	}
	return nil
}

// ClearQueued drops still-queued notifications for a hackathon. Called
// before a re-run so stale team placements are never delivered.
func (r *NotificationRepository) ClearQueued(ctx context.Context, hackathonID string) error {
	query := `DELETE team_notification WHERE hackathon_id = $hid AND status = $status`
	vars := map[string]interface{}{
		"hid":    hackathonID,
		"status": model.NotificationStatusQueued,
	}
	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to clear queued notifications: %w", err)
	}
	return nil
}

// ListQueued retrieves up to limit deliverable notifications, oldest first
func (r *NotificationRepository) ListQueued(ctx context.Context, limit int) ([]*model.TeamNotification, error) {
	query := `SELECT * FROM team_notification WHERE status = $status AND attempts < $max_attempts ORDER BY created_on ASC, id ASC LIMIT $limit`
	vars := map[string]interface{}{
		"status":       model.NotificationStatusQueued,
		"max_attempts": model.MaxNotificationAttempts,
		"limit":        limit,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued notifications: %w", err)
	}

	return r.parseNotifications(result)
}

// ListByHackathon retrieves all notifications for a hackathon
func (r *NotificationRepository) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.TeamNotification, error) {
	query := `SELECT * FROM team_notification WHERE hackathon_id = $hackathon_id ORDER BY created_on ASC, id ASC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"hackathon_id": hackathonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.parseNotifications(result)
}

// MarkSent records a successful delivery
func (r *NotificationRepository) MarkSent(ctx context.Context, id string, sentOn time.Time) error {
	query := `UPDATE type::record($id) SET status = $status, sent_on = $sent_on, last_error = NONE, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":      id,
		"status":  model.NotificationStatusSent,
		"sent_on": sentOn,
	}
	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed delivery attempt. The notification stays
// queued until its attempt budget runs out, then flips to failed.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `UPDATE type::record($id) SET attempts = attempts + 1, last_error = $reason, status = (IF attempts >= $max_attempts THEN $failed ELSE $queued END), updated_on = time::now()`
	vars := map[string]interface{}{
		"id":           id,
		"reason":       reason,
		"max_attempts": model.MaxNotificationAttempts,
		"failed":       model.NotificationStatusFailed,
		"queued":       model.NotificationStatusQueued,
	}
	if err := r.db.Execute(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}
	return nil
}

// Parsing helpers

func (r *NotificationRepository) parseNotification(result interface{}) (*model.TeamNotification, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	notification := &model.TeamNotification{
		ID:                convertSurrealID(data["id"]),
		HackathonID:       convertSurrealID(data["hackathon_id"]),
		RecipientID:       convertSurrealID(data["recipient_id"]),
		RecipientEmail:    getString(data, "recipient_email"),
		TeamNumber:        getInt(data, "team_number"),
		TeammateSummaries: getStringSlice(data, "teammate_summaries"),
		Status:            getString(data, "status"),
		Attempts:          getInt(data, "attempts"),
	}

	if lastError := getString(data, "last_error"); lastError != "" {
		notification.LastError = &lastError
	}
	notification.SentOn = getTime(data, "sent_on")
	if t := getTime(data, "created_on"); t != nil {
		notification.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		notification.UpdatedOn = *t
	}

	return notification, nil
}

func (r *NotificationRepository) parseNotifications(result []interface{}) ([]*model.TeamNotification, error) {
	notifications := make([]*model.TeamNotification, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					notification, err := r.parseNotification(item)
					if err != nil {
						continue
					}
					notifications = append(notifications, notification)
				}
			}
		}
	}

	return notifications, nil
}
