package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// SyncState tracks whether the loaded view can be planned against
type SyncState int

const (
	// SyncConsistent means the last load succeeded and no conflict has
	// been seen since.
	SyncConsistent SyncState = iota

	// SyncResyncPending means the view is known stale; drops are
	// refused until a reload succeeds.
	SyncResyncPending
)

// ErrResyncPending is returned by Drop while a reload is required.
var ErrResyncPending = errors.New("board is out of sync, reload required")

// DropResult reports what one drop did. Applied is true only when a
// store mutation landed; Resynced is true when the drop triggered a full
// reload instead (or in addition, after a conflict).
type DropResult struct {
	Plan     MutationPlan
	Applied  bool
	Resynced bool
	Message  string
}

// Board holds one activity type's locally loaded parties and roster and
// executes drop gestures against the store. It is not safe for
// concurrent use; the UI serializes gestures, one in flight at a time.
type Board struct {
	store     PartyStore
	partyType model.PartyType

	state   SyncState
	parties []model.Party
	members []model.Member
}

// NewBoard creates a board for one activity type. Call Load before the
// first Drop.
func NewBoard(store PartyStore, partyType model.PartyType) *Board {
	return &Board{
		store:     store,
		partyType: partyType,
		state:     SyncResyncPending, // nothing loaded yet
	}
}

// Load fetches parties and roster from the store. Success makes the
// board consistent; failure leaves it needing a reload.
func (b *Board) Load(ctx context.Context) error {
	parties, err := b.store.Parties(ctx, b.partyType)
	if err != nil {
		b.state = SyncResyncPending
		return fmt.Errorf("failed to load parties: %w", err)
	}
	members, err := b.store.Members(ctx)
	if err != nil {
		b.state = SyncResyncPending
		return fmt.Errorf("failed to load members: %w", err)
	}

	b.parties = parties
	b.members = members
	b.state = SyncConsistent
	return nil
}

// State returns the current sync state
func (b *Board) State() SyncState {
	return b.state
}

// Parties returns the loaded parties
func (b *Board) Parties() []model.Party {
	return b.parties
}

// Members returns the loaded roster
func (b *Board) Members() []model.Member {
	return b.members
}

// Unassigned derives the members not seated in any loaded party. Always
// recomputed from the loaded state.
func (b *Board) Unassigned() []model.Member {
	return model.UnassignedMembers(b.members, b.parties, b.partyType)
}

// Drop resolves and executes one drag gesture. A conflict from the
// store, or a plan that cannot be built from the loaded state, discards
// the gesture and reloads; the operator retries by hand. Nothing is
// replayed automatically.
func (b *Board) Drop(ctx context.Context, memberID int64, hint *SlotRef, target SlotRef) (DropResult, error) {
	if b.state != SyncConsistent {
		return DropResult{}, ErrResyncPending
	}

	plan, err := ResolveDrop(b.parties, memberID, hint, target)
	if err != nil {
		return DropResult{Plan: plan}, err
	}

	result := DropResult{Plan: plan, Message: plan.Message}

	switch plan.Kind {
	case PlanNone:
		return result, nil

	case PlanResync:
		result.Resynced = true
		return result, b.resync(ctx)

	case PlanAssign:
		err = b.store.Assign(ctx, assignRequest(plan, b.partyType))

	case PlanMoveAcross:
		err = b.store.Remove(ctx, &model.RemoveMemberRequest{
			MemberID:  plan.MemberID,
			PartyID:   plan.Source.PartyID,
			PartyType: b.partyType,
		})
		if err == nil {
			err = b.store.Assign(ctx, assignRequest(plan, b.partyType))
		}

	case PlanSwap:
		err = b.store.Swap(ctx, &model.SwapMembersRequest{
			Member1ID:        plan.MemberID,
			Member1PartyID:   plan.Source.PartyID,
			Member1SlotIndex: plan.Source.Slot,
			Member2ID:        plan.OccupantID,
			Member2PartyID:   plan.Target.PartyID,
			Member2SlotIndex: plan.Target.Slot,
			PartyType:        b.partyType,
		})
	}

	if err != nil {
		if errors.Is(err, ErrConflict) {
			// Data changed elsewhere; the plan was built on stale
			// assumptions. Reload and let the operator retry.
			result.Resynced = true
			result.Message = "data changed elsewhere, refreshing"
			if rerr := b.resync(ctx); rerr != nil {
				return result, rerr
			}
			return result, nil
		}
		return result, err
	}

	result.Applied = true
	if err := b.Load(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// Clear empties every slot through the store, then reloads
func (b *Board) Clear(ctx context.Context, scope *model.PartyType) error {
	if err := b.store.ClearAll(ctx, &model.ClearPartiesRequest{PartyType: scope}); err != nil {
		return err
	}
	return b.Load(ctx)
}

// resync discards the loaded view and reloads. The board stays
// resync-pending until a load succeeds.
func (b *Board) resync(ctx context.Context) error {
	b.state = SyncResyncPending
	return b.Load(ctx)
}

func assignRequest(plan MutationPlan, partyType model.PartyType) *model.AssignMemberRequest {
	return &model.AssignMemberRequest{
		MemberID:  plan.MemberID,
		PartyID:   plan.Target.PartyID,
		PartyType: partyType,
		SlotIndex: plan.Target.Slot,
		IsLeader:  plan.Target.Slot == model.LeaderSlot,
	}
}
