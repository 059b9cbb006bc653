package model

import "time"

// TeamNotification is one queued message telling a participant which team
// they landed on. Notifications are written to an outbox when an assignment
// run completes and drained by the dispatcher in rate-limited batches.
type TeamNotification struct {
	ID                string     `json:"id"`
	HackathonID       string     `json:"hackathon_id"`
	RecipientID       string     `json:"recipient_id"`
	RecipientEmail    string     `json:"recipient_email"`
	TeamNumber        int        `json:"team_number"`
	TeammateSummaries []string   `json:"teammate_summaries"`
	Status            string     `json:"status"`
	Attempts          int        `json:"attempts"`
	LastError         *string    `json:"last_error,omitempty"`
	SentOn            *time.Time `json:"sent_on,omitempty"`
	CreatedOn         time.Time  `json:"created_on"`
	UpdatedOn         time.Time  `json:"updated_on"`
}

// Notification status constants
const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// MaxNotificationAttempts bounds redelivery of failed messages
const MaxNotificationAttempts = 3

// DispatchResult is the per-recipient outcome of a dispatch pass. A failed
// send never aborts the batch; it is collected here and reported.
type DispatchResult struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	Sent           bool   `json:"sent"`
	Reason         string `json:"reason,omitempty"`
}
