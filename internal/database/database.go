// Package database provides the SurrealDB abstraction layer for the
// guild manager.
//
// The Database interface exposes three query methods:
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by ID)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// # Transactions
//
// Transactions here are BATCH-BASED, not connection-level: statements
// accumulate in memory and are wrapped in BEGIN TRANSACTION / COMMIT
// TRANSACTION at execution time. There is no isolation between Add()
// calls; everything succeeds or fails together at commit. The slot
// mutations (assign, swap) rely on this: occupancy preconditions are
// expressed as THROW statements inside the batch, so a stale assertion
// aborts the whole transaction server-side.
//
// # Error Handling
//
// Standard errors cover the common failure cases and are checked with
// errors.Is():
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrConflict: a transactional precondition (THROW) failed
//   - ErrConnection: connection issues
//   - ErrQuery: query execution failure
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConflict indicates a transactional precondition failed: the
	// record changed between the caller's read and the commit.
	ErrConflict = errors.New("conflicting update")

	// ErrConnection indicates a failure to connect to or communicate
	// with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
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
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
