// Package repository implements the data access layer for the guild
// manager.
//
// Each repository struct handles the SurrealDB operations for one domain
// entity. All repositories follow the same pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Database
//   - Parameterized SurrealQL with $variable syntax
//   - type::record() / type::thing() for safe ID handling
//   - time::now() for timestamps
//   - Results parsed into model structs by the helpers in helpers.go
//
// # Slot mutations
//
// Party slot writes are guarded: the caller states the slot array it
// read, and the transaction THROWs if the stored array has changed in the
// meantime. The repository maps those THROWs to database.ErrConflict so
// the service layer can distinguish "someone else moved a member" from
// plain query failures. Swaps combine two guarded writes in one
// transaction so no observer ever sees half a swap.
package repository
