package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/teamsmith/hackops/internal/model"
)

// NotificationDispatcher drains the team notification outbox
type NotificationDispatcher interface {
	DispatchQueued(ctx context.Context) ([]model.DispatchResult, error)
}

// OutboxDrainer periodically dispatches queued team notifications
type OutboxDrainer struct {
	dispatcher NotificationDispatcher
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	running    bool
	mu         sync.Mutex
}

// NewOutboxDrainer creates a new outbox drainer job
func NewOutboxDrainer(dispatcher NotificationDispatcher, interval time.Duration) *OutboxDrainer {
	if interval == 0 {
		interval = 1 * time.Minute
	}
	return &OutboxDrainer{
		dispatcher: dispatcher,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the drainer job
func (d *OutboxDrainer) Start() {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	d.wg.Add(1)
	go d.run()
	log.Printf("Outbox drainer started (interval: %v)", d.interval)
}

// Stop gracefully stops the drainer job
func (d *OutboxDrainer) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	log.Println("Outbox drainer stopped")
}

// run is the main loop
func (d *OutboxDrainer) run() {
	defer d.wg.Done()

	// Drain immediately on start
	d.drain()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.drain()
		case <-d.stopCh:
			return
		}
	}
}

// drain runs a single dispatch pass with a bounded deadline
func (d *OutboxDrainer) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	results, err := d.dispatcher.DispatchQueued(ctx)
	if err != nil {
		log.Printf("Error draining notification outbox: %v", err)
	}
	if len(results) == 0 {
		return
	}

	sent, failed := 0, 0
	for _, r := range results {
		if r.Sent {
			sent++
		} else {
			failed++
		}
	}
	log.Printf("Notification outbox drained: %d sent, %d failed", sent, failed)
}

// RunOnce runs a single dispatch pass (for testing or manual trigger)
func (d *OutboxDrainer) RunOnce(ctx context.Context) ([]model.DispatchResult, error) {
	return d.dispatcher.DispatchQueued(ctx)
}

// IsRunning returns whether the drainer is running
func (d *OutboxDrainer) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}
