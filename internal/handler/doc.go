// Package handler provides HTTP request handlers for the guild roster
// API.
//
// The handler package contains all HTTP endpoint implementations
// organized by domain. Each handler struct encapsulates the
// dependencies needed to serve requests for a specific feature area
// (roster, parties, groups, events).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Successful responses carry {"data": ...}; failures carry problem
// details with an application/problem+json content type. Request DTOs
// are validated with struct tags before reaching the service layer.
package handler
