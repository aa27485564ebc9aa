package board

import (
	"context"
	"errors"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// Store error categories. Implementations wrap these so callers can use
// errors.Is regardless of transport.
var (
	// ErrNotFound means a referenced member or party does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means an asserted slot occupancy no longer matched
	// server state at commit time. Callers resync rather than retry.
	ErrConflict = errors.New("conflict")

	// ErrValidation means the request was malformed. Not retried.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable means the request could not complete. Surfaced to
	// the operator; never retried automatically, since assign and swap
	// are not idempotent.
	ErrUnavailable = errors.New("store unavailable")
)

// PartyStore is the remote authority for slot occupancy. All mutations
// are validated server-side at commit time; a stale client view shows up
// as ErrConflict.
type PartyStore interface {
	// Parties lists all parties of one activity type.
	Parties(ctx context.Context, partyType model.PartyType) ([]model.Party, error)

	// Members lists the full roster.
	Members(ctx context.Context) ([]model.Member, error)

	// Assign seats a member in an empty slot.
	Assign(ctx context.Context, req *model.AssignMemberRequest) error

	// Remove vacates a member's slot. Idempotent.
	Remove(ctx context.Context, req *model.RemoveMemberRequest) error

	// Swap exchanges two members' slots atomically.
	Swap(ctx context.Context, req *model.SwapMembersRequest) error

	// ClearAll empties every slot, optionally scoped to one type.
	ClearAll(ctx context.Context, req *model.ClearPartiesRequest) error
}
