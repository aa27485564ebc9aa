package board

import (
	"fmt"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// SlotRef names one slot on the board
type SlotRef struct {
	PartyID string
	Slot    int
}

// PlanKind classifies what a drop resolves to
type PlanKind int

const (
	// PlanNone means the drop changes nothing; no store call is issued.
	PlanNone PlanKind = iota

	// PlanAssign is a single assign call: seating from the unassigned
	// pool, or moving within one party (the server vacates the old slot
	// in the same write).
	PlanAssign

	// PlanMoveAcross moves a member to an empty slot in a different
	// party: remove from the source party, then assign. The remove must
	// complete before the assign is issued.
	PlanMoveAcross

	// PlanSwap exchanges the dragged member with the target occupant in
	// one atomic store call.
	PlanSwap

	// PlanResync means the local view is too stale to plan against;
	// reload before trying again.
	PlanResync
)

// String returns a short name for the plan kind
func (k PlanKind) String() string {
	switch k {
	case PlanNone:
		return "none"
	case PlanAssign:
		return "assign"
	case PlanMoveAcross:
		return "move"
	case PlanSwap:
		return "swap"
	case PlanResync:
		return "resync"
	default:
		return fmt.Sprintf("plan(%d)", int(k))
	}
}

// MutationPlan is the resolved sequence of store calls for one drag
// gesture. Source is the dragged member's located slot, nil when dragged
// from the unassigned pool. OccupantID is the swap partner for PlanSwap.
//
// StaleHint records that the caller's source hint disagreed with where
// the member was actually found; the located position won, but the
// disagreement is a desync signal worth surfacing.
type MutationPlan struct {
	Kind       PlanKind
	MemberID   int64
	Source     *SlotRef
	Target     SlotRef
	OccupantID int64
	StaleHint  bool
	Message    string
}

// ResolveDrop turns one drag gesture into a MutationPlan. parties is the
// locally known state for one activity type; hint is where the caller
// believes the member was dragged from, nil when dragged from the
// unassigned pool.
//
// The dragged member's true position is always located by searching
// parties; the hint is never trusted on its own. Returns ErrValidation
// when the target slot index is out of range.
func ResolveDrop(parties []model.Party, memberID int64, hint *SlotRef, target SlotRef) (MutationPlan, error) {
	if !model.IsValidSlot(target.Slot) {
		return MutationPlan{}, fmt.Errorf("%w: slot index %d out of range", ErrValidation, target.Slot)
	}
	if memberID == model.EmptySlot {
		return MutationPlan{}, fmt.Errorf("%w: no member being dragged", ErrValidation)
	}

	plan := MutationPlan{MemberID: memberID, Target: target}

	var targetParty *model.Party
	for i := range parties {
		if parties[i].ID == target.PartyID {
			targetParty = &parties[i]
			break
		}
	}
	if targetParty == nil {
		// The target party is gone from the latest known state; the
		// view that produced this gesture is stale.
		plan.Kind = PlanResync
		plan.Message = "target party no longer exists"
		return plan, nil
	}

	source := locate(parties, memberID)
	plan.Source = source
	plan.StaleHint = hint != nil && (source == nil || *hint != *source)

	occupant := targetParty.OccupantAt(target.Slot)

	switch {
	case occupant == memberID,
		source != nil && *source == target:
		plan.Kind = PlanNone
		plan.Message = "already in that position"

	case occupant == model.EmptySlot:
		if source == nil || source.PartyID == target.PartyID {
			plan.Kind = PlanAssign
		} else {
			plan.Kind = PlanMoveAcross
		}

	default:
		if source == nil {
			// Swapping needs a known source position; do not guess.
			plan.Kind = PlanResync
			plan.Message = "dragged member's position cannot be located"
			return plan, nil
		}
		plan.Kind = PlanSwap
		plan.OccupantID = occupant
	}

	return plan, nil
}

// locate finds the slot holding the member, searching every party
func locate(parties []model.Party, memberID int64) *SlotRef {
	for i := range parties {
		if slot := parties[i].SlotOf(memberID); slot >= 0 {
			return &SlotRef{PartyID: parties[i].ID, Slot: slot}
		}
	}
	return nil
}
