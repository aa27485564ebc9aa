// Package database provides database connectivity for the guild manager API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Database Interface
//
// The Database interface defines core operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "guildmanager",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	err := db.Connect(ctx)
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConflict: Guarded write lost against concurrent state
//   - ErrConnection: Database connection failed
//
// # Transactions
//
// TxBuilder composes multiple guarded statements into a single
// BEGIN/COMMIT block, namespacing each statement's variables:
//
//	tx := database.NewTxBuilder()
//	tx.Add(guardedUpdate, vars)
//	err := database.ExecuteTransaction(ctx, db, tx)
package database
