package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/teamsmith/hackops/internal/model"
)

func queuedNotifications(n int) []*model.TeamNotification {
	notifications := make([]*model.TeamNotification, 0, n)
	for i := 0; i < n; i++ {
		notifications = append(notifications, &model.TeamNotification{
			ID:             fmt.Sprintf("team_notification:%d", i+1),
			RecipientID:    fmt.Sprintf("participant:%d", i+1),
			RecipientEmail: fmt.Sprintf("p%d@example.com", i+1),
			TeamNumber:     1,
			Status:         model.NotificationStatusQueued,
		})
	}
	return notifications
}

// queueStore simulates the outbox: ListQueued returns the head of the
// queue and Mark* removes entries.
type queueStore struct {
	pending []*model.TeamNotification
	sent    []string
	failed  map[string]string
}

func newQueueStore(pending []*model.TeamNotification) *queueStore {
	return &queueStore{pending: pending, failed: make(map[string]string)}
}

func (s *queueStore) asStore() *mockNotificationStore {
	return &mockNotificationStore{
		listQueuedFunc: func(ctx context.Context, limit int) ([]*model.TeamNotification, error) {
			if limit > len(s.pending) {
				limit = len(s.pending)
			}
			batch := make([]*model.TeamNotification, limit)
			copy(batch, s.pending[:limit])
			return batch, nil
		},
		markSentFunc: func(ctx context.Context, id string, sentOn time.Time) error {
			s.sent = append(s.sent, id)
			s.remove(id)
			return nil
		},
		markFailedFunc: func(ctx context.Context, id string, reason string) error {
			s.failed[id] = reason
			s.remove(id)
			return nil
		},
	}
}

func (s *queueStore) remove(id string) {
	remaining := s.pending[:0]
	for _, n := range s.pending {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}
	s.pending = remaining
}

func TestDispatchQueued_SendsEverything(t *testing.T) {
	store := newQueueStore(queuedNotifications(3))

	dispatcher := NewDispatcher(DispatcherConfig{
		Store:      store.asStore(),
		Mailer:     &mockMailer{},
		BatchSize:  25,
		BatchDelay: time.Millisecond,
	})

	results, err := dispatcher.DispatchQueued(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Sent {
			t.Errorf("expected %s sent, got reason %q", r.NotificationID, r.Reason)
		}
	}
	if len(store.sent) != 3 {
		t.Errorf("expected 3 marked sent, got %d", len(store.sent))
	}
}

func TestDispatchQueued_CollectsFailuresWithoutAborting(t *testing.T) {
	store := newQueueStore(queuedNotifications(4))

	mailer := &mockMailer{
		sendFunc: func(ctx context.Context, n *model.TeamNotification) error {
			if n.ID == "team_notification:2" {
				return errors.New("smtp unavailable")
			}
			return nil
		},
	}

	dispatcher := NewDispatcher(DispatcherConfig{
		Store:      store.asStore(),
		Mailer:     mailer,
		BatchSize:  25,
		BatchDelay: time.Millisecond,
	})

	results, err := dispatcher.DispatchQueued(context.Background())
	if err != nil {
		t.Fatalf("a failed send must not fail the pass, got %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if !r.Sent {
			failures++
			if r.Reason != "smtp unavailable" {
				t.Errorf("expected failure reason recorded, got %q", r.Reason)
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
	if reason := store.failed["team_notification:2"]; reason != "smtp unavailable" {
		t.Errorf("expected failure marked in store, got %q", reason)
	}
	if len(store.sent) != 3 {
		t.Errorf("expected remaining 3 marked sent, got %d", len(store.sent))
	}
}

func TestDispatchQueued_DrainsInBatches(t *testing.T) {
	store := newQueueStore(queuedNotifications(5))

	listCalls := 0
	base := store.asStore()
	counting := &mockNotificationStore{
		listQueuedFunc: func(ctx context.Context, limit int) ([]*model.TeamNotification, error) {
			listCalls++
			return base.ListQueued(ctx, limit)
		},
		markSentFunc:   base.markSentFunc,
		markFailedFunc: base.markFailedFunc,
	}

	dispatcher := NewDispatcher(DispatcherConfig{
		Store:      counting,
		Mailer:     &mockMailer{},
		BatchSize:  2,
		BatchDelay: time.Millisecond,
	})

	results, err := dispatcher.DispatchQueued(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	// 2 + 2 + 1: the short final batch ends the drain
	if listCalls != 3 {
		t.Errorf("expected 3 batch fetches, got %d", listCalls)
	}
}

func TestDispatchQueued_StopsOnCancelledContext(t *testing.T) {
	store := newQueueStore(queuedNotifications(4))

	ctx, cancel := context.WithCancel(context.Background())

	dispatcher := NewDispatcher(DispatcherConfig{
		Store: store.asStore(),
		Mailer: &mockMailer{
			sendFunc: func(sendCtx context.Context, n *model.TeamNotification) error {
				cancel()
				return nil
			},
		},
		BatchSize:  2,
		BatchDelay: time.Minute,
	})

	results, err := dispatcher.DispatchQueued(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected first batch results preserved, got %d", len(results))
	}
}

func TestNewDispatcher_AppliesDefaults(t *testing.T) {
	dispatcher := NewDispatcher(DispatcherConfig{
		Store:  &mockNotificationStore{},
		Mailer: &mockMailer{},
	})

	if dispatcher.batchSize != DefaultDispatchBatchSize {
		t.Errorf("expected default batch size, got %d", dispatcher.batchSize)
	}
	if dispatcher.batchDelay != DefaultBatchDelay {
		t.Errorf("expected default batch delay, got %v", dispatcher.batchDelay)
	}
	if dispatcher.batchTimeout != DefaultBatchTimeout {
		t.Errorf("expected default batch timeout, got %v", dispatcher.batchTimeout)
	}
}
