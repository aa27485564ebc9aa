// Package board is the client-side core for editing party rosters with
// drag and drop against a remote party store.
//
// The package has three parts:
//
//   - ResolveDrop, a pure resolver that turns one drag gesture into a
//     MutationPlan: the exact store calls (assign, remove+assign, swap)
//     needed to realize it, or a no-op, or a resync signal when the
//     local view is too stale to plan against.
//   - PartyStore, the remote contract, with an HTTP implementation in
//     Client. Store failures map onto four sentinels (ErrNotFound,
//     ErrConflict, ErrValidation, ErrUnavailable) so callers branch on
//     category, never on transport detail.
//   - Board, which holds the locally loaded parties and roster, runs
//     plans step by step, and owns the consistency state machine: any
//     conflict or unlocatable source flips it to resync-pending, the
//     plan is discarded, and a full reload is the only way back. No
//     discarded plan is ever replayed automatically.
//
// The unassigned pool is always derived from the loaded state, never
// patched incrementally, so it cannot drift from slot occupancy.
package board
