// Package database provides the SurrealDB access layer for HackOps.
//
// The Database interface keeps repositories independent of the driver. It
// exposes three query shapes:
//   - Query: multiple results (SELECT returning lists)
//   - QueryOne: a single result (SELECT by ID)
//   - Execute: no results (CREATE/UPDATE/DELETE mutations)
//
// # Transactions
//
// Transactions here are BATCH-BASED, not connection-level. BeginTx()
// accumulates queries in memory; Commit() wraps them in BEGIN TRANSACTION /
// COMMIT TRANSACTION and sends them as one request. Consequences:
//   - no isolation between Add() calls before Commit()
//   - Rollback() discards the accumulated queries, nothing to undo
//   - everything succeeds or fails together at commit time
//
// Prefer AtomicBatch for multi-statement writes; see transaction.go.
//
// # Errors
//
// Failures map onto the sentinel errors below; check them with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // record missing
//	}
//
// ErrConnection is the transient class: the retry decorator in the
// repository package re-runs reads and idempotent writes that fail with it.
package database

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate email).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)
}

// Transaction represents a batch-based database transaction
type Transaction interface {
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
	Commit() error
	Rollback() error
}

// Config holds database connection settings
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
