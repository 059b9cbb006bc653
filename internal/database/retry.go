package database

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// RetryConfig tunes the retrying decorator
type RetryConfig struct {
	// Attempts is the total number of tries, including the first
	Attempts int
	// Backoff is the delay before the first retry; it doubles per retry
	Backoff time.Duration
	Logger  *slog.Logger
}

// DefaultRetryConfig covers brief connection blips without masking a down
// database for long.
var DefaultRetryConfig = RetryConfig{
	Attempts: 3,
	Backoff:  100 * time.Millisecond,
}

// NewRetrying wraps db so operations failing with ErrConnection are retried
// with exponential backoff. Query failures (ErrQuery, ErrNotFound,
// ErrDuplicate) pass through immediately since reissuing them cannot help.
func NewRetrying(db Database, cfg RetryConfig) Database {
	if cfg.Attempts <= 0 {
		cfg.Attempts = DefaultRetryConfig.Attempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultRetryConfig.Backoff
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &retrying{db: db, cfg: cfg}
}

type retrying struct {
	db  Database
	cfg RetryConfig
}

func (r *retrying) retry(ctx context.Context, op string, fn func() error) error {
	backoff := r.cfg.Backoff
	var err error

	for attempt := 1; attempt <= r.cfg.Attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, ErrConnection) {
			return err
		}
		if attempt == r.cfg.Attempts {
			break
		}

		r.cfg.Logger.Warn("transient database error, retrying",
			"op", op,
			"attempt", attempt,
			"backoff", backoff.String(),
			"error", err)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return err
}

func (r *retrying) Connect(ctx context.Context) error {
	return r.retry(ctx, "connect", func() error {
		return r.db.Connect(ctx)
	})
}

func (r *retrying) Close() error {
	return r.db.Close()
}

func (r *retrying) Ping(ctx context.Context) error {
	return r.retry(ctx, "ping", func() error {
		return r.db.Ping(ctx)
	})
}

func (r *retrying) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	var results []interface{}
	err := r.retry(ctx, "query", func() error {
		var err error
		results, err = r.db.Query(ctx, query, vars)
		return err
	})
	return results, err
}

func (r *retrying) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	var result interface{}
	err := r.retry(ctx, "query_one", func() error {
		var err error
		result, err = r.db.QueryOne(ctx, query, vars)
		return err
	})
	return result, err
}

func (r *retrying) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	return r.retry(ctx, "execute", func() error {
		return r.db.Execute(ctx, query, vars)
	})
}

func (r *retrying) BeginTx(ctx context.Context) (Transaction, error) {
	var tx Transaction
	err := r.retry(ctx, "begin_tx", func() error {
		var err error
		tx, err = r.db.BeginTx(ctx)
		return err
	})
	return tx, err
}
