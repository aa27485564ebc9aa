// Package service implements the business logic layer for the guild
// roster API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Slot Mutations
//
// The party service reads a party, computes the new slot array in Go,
// and commits it through a guarded repository write that re-checks the
// array it read. A concurrent mutation surfaces as ErrPositionChanged,
// which handlers translate to 409 so clients reload and retry.
package service
