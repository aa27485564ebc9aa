// Package jobs implements background tasks for the guild roster API.
//
// Jobs run independently of HTTP request handling, each on its own
// ticker with Start/Stop lifecycle and a RunOnce hook for manual
// triggering and tests.
//
// # Jobs
//
//   - IntegrityAuditor: periodically scans every party for the
//     occupancy invariants (no member seated twice within one activity
//     type, no slot holding an id that is not on the roster) and logs
//     violations. Guarded writes should make violations impossible;
//     the auditor is how a bug would actually get noticed.
//
// Errors are logged, never fatal to the process.
package jobs
