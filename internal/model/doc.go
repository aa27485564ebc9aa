// Package model defines the domain types for the guild manager.
//
// The package holds the persistent records (Member, Party, Group), the
// request DTOs accepted at the HTTP boundary, and the RFC 9457 Problem
// Details error responses. Party slot arithmetic that both the server and
// the board client need (slot lookup, unassigned pool derivation) lives
// here so neither side depends on the other.
package model
