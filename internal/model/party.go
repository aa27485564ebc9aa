package model

import "time"

// PartyType identifies which recurring guild activity a party fights in.
// The KVM and GVG rosters are independent pools: a member may hold a slot
// in one party of each type at the same time, but never two slots within
// the same type.
type PartyType string

const (
	PartyTypeKVM PartyType = "kvm"
	PartyTypeGVG PartyType = "gvg"
)

// PartyTypes lists every activity type in display order.
var PartyTypes = []PartyType{PartyTypeKVM, PartyTypeGVG}

// IsValid returns true if the type is a known activity type
func (t PartyType) IsValid() bool {
	switch t {
	case PartyTypeKVM, PartyTypeGVG:
		return true
	default:
		return false
	}
}

const (
	// PartySize is the fixed number of slots in every party.
	PartySize = 5

	// LeaderSlot is the slot index reserved for the party leader.
	LeaderSlot = 0

	// EmptySlot is the sentinel stored in a vacant slot. Member ids are
	// allocated starting at 1, so 0 never collides with a real member.
	EmptySlot int64 = 0
)

// IsValidSlot reports whether slot is a legal slot index.
func IsValidSlot(slot int) bool {
	return slot >= 0 && slot < PartySize
}

// Party is a fixed five-slot combat squad. MemberIDs holds exactly
// PartySize entries; slot 0 is the leader slot and vacant slots hold
// EmptySlot. Slot occupancy is mutated only through the party service's
// assign, remove, swap and clear operations.
type Party struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      PartyType        `json:"type"`
	GroupID   string           `json:"group_id,omitempty"`
	MemberIDs [PartySize]int64 `json:"member_ids"`
	CreatedOn time.Time        `json:"created_on"`
	UpdatedOn time.Time        `json:"updated_on"`
}

// SlotOf returns the slot index currently holding memberID, or -1 if the
// member is not in this party.
func (p *Party) SlotOf(memberID int64) int {
	if memberID == EmptySlot {
		return -1
	}
	for i, id := range p.MemberIDs {
		if id == memberID {
			return i
		}
	}
	return -1
}

// OccupantAt returns the member id seated in slot, or EmptySlot if the
// slot is vacant or out of range.
func (p *Party) OccupantAt(slot int) int64 {
	if !IsValidSlot(slot) {
		return EmptySlot
	}
	return p.MemberIDs[slot]
}

// Leader returns the member id in the leader slot, or EmptySlot.
func (p *Party) Leader() int64 {
	return p.MemberIDs[LeaderSlot]
}

// AssignedIDs returns the non-sentinel member ids seated in this party.
func (p *Party) AssignedIDs() []int64 {
	ids := make([]int64, 0, PartySize)
	for _, id := range p.MemberIDs {
		if id != EmptySlot {
			ids = append(ids, id)
		}
	}
	return ids
}

// PartyWithMembers is a party plus its seated members resolved from the
// roster. It is a read-only projection for display; mutations go through
// the party service, never through this struct.
type PartyWithMembers struct {
	Party
	Members []Member `json:"members"`
}

// UnassignedMembers derives the members holding no slot in any party of
// the given activity type, preserving the roster's original ordering.
// The result is recomputed from scratch on every call; it is never
// patched incrementally.
func UnassignedMembers(members []Member, parties []Party, t PartyType) []Member {
	assigned := make(map[int64]struct{})
	for _, p := range parties {
		if p.Type != t {
			continue
		}
		for _, id := range p.MemberIDs {
			if id != EmptySlot {
				assigned[id] = struct{}{}
			}
		}
	}

	unassigned := make([]Member, 0, len(members))
	for _, m := range members {
		if _, ok := assigned[m.ID]; !ok {
			unassigned = append(unassigned, m)
		}
	}
	return unassigned
}

// DuplicateAssignments returns the member ids seated in more than one
// slot across parties of the same activity type. A healthy store always
// returns an empty slice.
func DuplicateAssignments(parties []Party, t PartyType) []int64 {
	seen := make(map[int64]int)
	for _, p := range parties {
		if p.Type != t {
			continue
		}
		for _, id := range p.MemberIDs {
			if id != EmptySlot {
				seen[id]++
			}
		}
	}

	var dups []int64
	for id, count := range seen {
		if count > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

// Business constraints
const (
	MaxPartyNameLength = 50
)

// CreatePartyRequest represents a request to create a party
type CreatePartyRequest struct {
	Name    string    `json:"name" validate:"required,max=50"`
	Type    PartyType `json:"type" validate:"required,oneof=kvm gvg"`
	GroupID string    `json:"group_id,omitempty"`
}

// UpdatePartyRequest represents a request to update a party
type UpdatePartyRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	GroupID *string `json:"group_id,omitempty"`
}

// AssignMemberRequest seats a member in a vacant slot. IsLeader is
// shorthand for slot 0; when set, SlotIndex is ignored.
type AssignMemberRequest struct {
	MemberID  int64     `json:"member_id" validate:"required,min=1"`
	PartyID   string    `json:"party_id" validate:"required"`
	PartyType PartyType `json:"party_type" validate:"required,oneof=kvm gvg"`
	SlotIndex int       `json:"slot_index" validate:"min=0,max=4"`
	IsLeader  bool      `json:"is_leader,omitempty"`
}

// Slot returns the effective target slot for the request.
func (r AssignMemberRequest) Slot() int {
	if r.IsLeader {
		return LeaderSlot
	}
	return r.SlotIndex
}

// RemoveMemberRequest vacates whichever slot the member holds in the
// party. Removing an absent member is a successful no-op.
type RemoveMemberRequest struct {
	MemberID  int64     `json:"member_id" validate:"required,min=1"`
	PartyID   string    `json:"party_id" validate:"required"`
	PartyType PartyType `json:"party_type" validate:"required,oneof=kvm gvg"`
}

// SwapMembersRequest atomically exchanges two members' slots, possibly
// across parties. The asserted (party, slot) positions are preconditions:
// the swap is rejected if either no longer holds at commit time.
type SwapMembersRequest struct {
	Member1ID        int64     `json:"member1_id" validate:"required,min=1"`
	Member1PartyID   string    `json:"member1_party_id" validate:"required"`
	Member1SlotIndex int       `json:"member1_slot_index" validate:"min=0,max=4"`
	Member2ID        int64     `json:"member2_id" validate:"required,min=1"`
	Member2PartyID   string    `json:"member2_party_id" validate:"required"`
	Member2SlotIndex int       `json:"member2_slot_index" validate:"min=0,max=4"`
	PartyType        PartyType `json:"party_type" validate:"required,oneof=kvm gvg"`
}

// ClearPartiesRequest empties every slot of every party, optionally
// scoped to one activity type. Irreversible.
type ClearPartiesRequest struct {
	PartyType *PartyType `json:"party_type,omitempty" validate:"omitempty,oneof=kvm gvg"`
}
