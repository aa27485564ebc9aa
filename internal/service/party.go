package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// PartyRepository defines the interface for party storage
type PartyRepository interface {
	Create(ctx context.Context, party *model.Party) error
	GetByID(ctx context.Context, id string) (*model.Party, error)
	ListByType(ctx context.Context, partyType model.PartyType) ([]model.Party, error)
	ListAll(ctx context.Context) ([]model.Party, error)
	ListByGroup(ctx context.Context, groupID string) ([]model.Party, error)
	Update(ctx context.Context, party *model.Party) error
	Delete(ctx context.Context, id string) error
	ReplaceSlots(ctx context.Context, partyID string, partyType model.PartyType, expected, next [model.PartySize]int64, mustBeFree []int64) error
	SwapSlots(ctx context.Context, party1ID string, expected1, next1 [model.PartySize]int64, party2ID string, expected2, next2 [model.PartySize]int64) error
	ClearSlots(ctx context.Context, partyType *model.PartyType) error
}

// PartyMemberRepository is the slice of member storage assignments need
type PartyMemberRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
}

// PartyGroupRepository is the slice of group storage party CRUD needs
type PartyGroupRepository interface {
	GetByID(ctx context.Context, id string) (*model.Group, error)
}

// PartyService handles party business logic: CRUD plus the slot
// mutations assign, remove, swap, and clear-all.
type PartyService struct {
	repo       PartyRepository
	memberRepo PartyMemberRepository
	groupRepo  PartyGroupRepository
	events     *EventHub
}

// PartyServiceConfig holds configuration for the party service
type PartyServiceConfig struct {
	PartyRepo  PartyRepository
	MemberRepo PartyMemberRepository
	GroupRepo  PartyGroupRepository
	Events     *EventHub
}

// NewPartyService creates a new party service
func NewPartyService(cfg PartyServiceConfig) *PartyService {
	return &PartyService{
		repo:       cfg.PartyRepo,
		memberRepo: cfg.MemberRepo,
		groupRepo:  cfg.GroupRepo,
		events:     cfg.Events,
	}
}

// Create creates a new party with every slot empty
func (s *PartyService) Create(ctx context.Context, req *model.CreatePartyRequest) (*model.Party, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) > model.MaxPartyNameLength {
		return nil, ErrPartyNameTooLong
	}
	if !req.Type.IsValid() {
		return nil, ErrInvalidPartyType
	}
	if req.GroupID != "" {
		group, err := s.groupRepo.GetByID(ctx, req.GroupID)
		if err != nil {
			return nil, fmt.Errorf("failed to get group: %w", err)
		}
		if group == nil {
			return nil, ErrGroupNotFound
		}
		if group.Type != req.Type {
			return nil, ErrPartyTypeMismatch
		}
	}

	party := &model.Party{
		Name:    name,
		Type:    req.Type,
		GroupID: req.GroupID,
	}
	if err := s.repo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.publishPartyUpdated(party.ID, "created")
	return party, nil
}

// Get retrieves a party by ID
func (s *PartyService) Get(ctx context.Context, id string) (*model.Party, error) {
	party, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	if party == nil {
		return nil, ErrPartyNotFound
	}
	return party, nil
}

// GetWithMembers retrieves a party together with the member records
// seated in it
func (s *PartyService) GetWithMembers(ctx context.Context, id string) (*model.PartyWithMembers, error) {
	party, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := s.resolveMembers(ctx, party.AssignedIDs())
	if err != nil {
		return nil, err
	}
	return &model.PartyWithMembers{Party: *party, Members: members}, nil
}

// ListByType retrieves all parties of one type, each joined with its
// seated members
func (s *PartyService) ListByType(ctx context.Context, partyType model.PartyType) ([]model.PartyWithMembers, error) {
	if !partyType.IsValid() {
		return nil, ErrInvalidPartyType
	}
	parties, err := s.repo.ListByType(ctx, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return s.joinMembers(ctx, parties)
}

// ListAll retrieves every party across both types, joined with members
func (s *PartyService) ListAll(ctx context.Context) ([]model.PartyWithMembers, error) {
	parties, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return s.joinMembers(ctx, parties)
}

// Update updates a party's name and group. Moving between groups keeps
// the type consistent; slots are untouched.
func (s *PartyService) Update(ctx context.Context, id string, req *model.UpdatePartyRequest) (*model.Party, error) {
	party, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) > model.MaxPartyNameLength {
			return nil, ErrPartyNameTooLong
		}
		party.Name = name
	}
	if req.GroupID != nil {
		if *req.GroupID != "" {
			group, err := s.groupRepo.GetByID(ctx, *req.GroupID)
			if err != nil {
				return nil, fmt.Errorf("failed to get group: %w", err)
			}
			if group == nil {
				return nil, ErrGroupNotFound
			}
			if group.Type != party.Type {
				return nil, ErrPartyTypeMismatch
			}
		}
		party.GroupID = *req.GroupID
	}

	if err := s.repo.Update(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to update party: %w", err)
	}

	s.publishPartyUpdated(party.ID, "updated")
	return party, nil
}

// Delete deletes a party. Its members simply become unassigned for the
// party's type.
func (s *PartyService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}

	s.publishPartyUpdated(id, "deleted")
	return nil
}

// Assign seats a member in a party slot. The target slot must be empty
// and the member must not be seated in any other party of the same
// type; moving a member within their own party vacates the old slot in
// the same write.
func (s *PartyService) Assign(ctx context.Context, req *model.AssignMemberRequest) (*model.Party, error) {
	slot := req.Slot()
	if !model.IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	if !req.PartyType.IsValid() {
		return nil, ErrInvalidPartyType
	}

	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	party, err := s.Get(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if party.Type != req.PartyType {
		return nil, ErrPartyTypeMismatch
	}

	occupant := party.OccupantAt(slot)
	if occupant == req.MemberID {
		return party, nil // already seated there
	}
	if occupant != model.EmptySlot {
		return nil, ErrSlotOccupied
	}

	expected := party.MemberIDs
	next := expected
	var mustBeFree []int64

	if current := party.SlotOf(req.MemberID); current >= 0 {
		// Move within the same party: vacate the old slot in the same
		// guarded write.
		next[current] = model.EmptySlot
	} else {
		if seated, err := s.findSeat(ctx, req.PartyType, req.MemberID, req.PartyID); err != nil {
			return nil, err
		} else if seated {
			return nil, ErrMemberAlreadyAssigned
		}
		// Re-checked inside the transaction; the listing above only
		// gives the friendly error for the common case.
		mustBeFree = []int64{req.MemberID}
	}
	next[slot] = req.MemberID

	if err := s.repo.ReplaceSlots(ctx, party.ID, party.Type, expected, next, mustBeFree); err != nil {
		return nil, s.mapSlotError(err)
	}

	party.MemberIDs = next
	s.publishPartyUpdated(party.ID, "assigned")
	return party, nil
}

// Remove vacates the member's slot in the party. Removing a member who
// is not seated there succeeds without changing anything.
func (s *PartyService) Remove(ctx context.Context, req *model.RemoveMemberRequest) (*model.Party, error) {
	if !req.PartyType.IsValid() {
		return nil, ErrInvalidPartyType
	}

	party, err := s.Get(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	if party.Type != req.PartyType {
		return nil, ErrPartyTypeMismatch
	}

	slot := party.SlotOf(req.MemberID)
	if slot < 0 {
		return party, nil // idempotent
	}

	expected := party.MemberIDs
	next := expected
	next[slot] = model.EmptySlot

	if err := s.repo.ReplaceSlots(ctx, party.ID, party.Type, expected, next, nil); err != nil {
		return nil, s.mapSlotError(err)
	}

	party.MemberIDs = next
	s.publishPartyUpdated(party.ID, "removed")
	return party, nil
}

// Swap exchanges two members' slots atomically, within one party or
// across two parties of the same type. The request's asserted positions
// must still hold; otherwise the client is stale and gets a conflict.
func (s *PartyService) Swap(ctx context.Context, req *model.SwapMembersRequest) error {
	if !req.PartyType.IsValid() {
		return ErrInvalidPartyType
	}
	if !model.IsValidSlot(req.Member1SlotIndex) || !model.IsValidSlot(req.Member2SlotIndex) {
		return ErrInvalidSlot
	}
	if req.Member1ID == req.Member2ID {
		return ErrSwapMembersIdentical
	}

	party1, err := s.Get(ctx, req.Member1PartyID)
	if err != nil {
		return err
	}
	if party1.Type != req.PartyType {
		return ErrPartyTypeMismatch
	}

	if req.Member1PartyID == req.Member2PartyID {
		return s.swapWithin(ctx, party1, req)
	}

	party2, err := s.Get(ctx, req.Member2PartyID)
	if err != nil {
		return err
	}
	if party2.Type != req.PartyType {
		return ErrPartyTypeMismatch
	}
	return s.swapAcross(ctx, party1, party2, req)
}

func (s *PartyService) swapWithin(ctx context.Context, party *model.Party, req *model.SwapMembersRequest) error {
	if party.OccupantAt(req.Member1SlotIndex) != req.Member1ID ||
		party.OccupantAt(req.Member2SlotIndex) != req.Member2ID {
		return ErrMemberNotSeated
	}

	expected := party.MemberIDs
	next := expected
	next[req.Member1SlotIndex] = req.Member2ID
	next[req.Member2SlotIndex] = req.Member1ID

	if err := s.repo.ReplaceSlots(ctx, party.ID, party.Type, expected, next, nil); err != nil {
		return s.mapSlotError(err)
	}

	s.publishPartyUpdated(party.ID, "swapped")
	return nil
}

func (s *PartyService) swapAcross(ctx context.Context, party1, party2 *model.Party, req *model.SwapMembersRequest) error {
	if party1.OccupantAt(req.Member1SlotIndex) != req.Member1ID ||
		party2.OccupantAt(req.Member2SlotIndex) != req.Member2ID {
		return ErrMemberNotSeated
	}

	expected1 := party1.MemberIDs
	next1 := expected1
	next1[req.Member1SlotIndex] = req.Member2ID

	expected2 := party2.MemberIDs
	next2 := expected2
	next2[req.Member2SlotIndex] = req.Member1ID

	if err := s.repo.SwapSlots(ctx, party1.ID, expected1, next1, party2.ID, expected2, next2); err != nil {
		return s.mapSlotError(err)
	}

	s.publishPartyUpdated(party1.ID, "swapped")
	s.publishPartyUpdated(party2.ID, "swapped")
	return nil
}

// ClearAll empties every slot of every party, optionally scoped to one
// type. Parties and groups survive; only seating is lost.
func (s *PartyService) ClearAll(ctx context.Context, req *model.ClearPartiesRequest) error {
	if req.PartyType != nil && !req.PartyType.IsValid() {
		return ErrInvalidPartyType
	}
	if err := s.repo.ClearSlots(ctx, req.PartyType); err != nil {
		return fmt.Errorf("failed to clear parties: %w", err)
	}

	scope := "all"
	if req.PartyType != nil {
		scope = string(*req.PartyType)
	}
	if s.events != nil {
		s.events.Publish(&Event{
			Type: EventPartiesCleared,
			Data: map[string]string{"scope": scope},
		})
	}
	return nil
}

// findSeat reports whether the member is seated in any party of the
// type other than excludePartyID
func (s *PartyService) findSeat(ctx context.Context, partyType model.PartyType, memberID int64, excludePartyID string) (bool, error) {
	parties, err := s.repo.ListByType(ctx, partyType)
	if err != nil {
		return false, fmt.Errorf("failed to list parties: %w", err)
	}
	for i := range parties {
		if parties[i].ID == excludePartyID {
			continue
		}
		if parties[i].SlotOf(memberID) >= 0 {
			return true, nil
		}
	}
	return false, nil
}

// joinMembers attaches member records to each party, resolving the whole
// roster once
func (s *PartyService) joinMembers(ctx context.Context, parties []model.Party) ([]model.PartyWithMembers, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	byID := make(map[int64]model.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	out := make([]model.PartyWithMembers, 0, len(parties))
	for _, party := range parties {
		seated := make([]model.Member, 0, model.PartySize)
		for _, id := range party.AssignedIDs() {
			if m, ok := byID[id]; ok {
				seated = append(seated, m)
			}
		}
		out = append(out, model.PartyWithMembers{Party: party, Members: seated})
	}
	return out, nil
}

// resolveMembers loads the member records for a list of ids, skipping
// ids that no longer resolve
func (s *PartyService) resolveMembers(ctx context.Context, ids []int64) ([]model.Member, error) {
	members := make([]model.Member, 0, len(ids))
	for _, id := range ids {
		member, err := s.memberRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		if member != nil {
			members = append(members, *member)
		}
	}
	return members, nil
}

// mapSlotError translates storage sentinels from guarded slot writes
// into service errors
func (s *PartyService) mapSlotError(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrPartyNotFound
	case errors.Is(err, database.ErrConflict):
		return fmt.Errorf("%w: %s", ErrPositionChanged, err)
	default:
		return fmt.Errorf("failed to update party slots: %w", err)
	}
}

func (s *PartyService) publishPartyUpdated(partyID, action string) {
	if s.events == nil {
		return
	}
	s.events.Publish(&Event{
		Type: EventPartyUpdated,
		Data: map[string]interface{}{
			"party_id": partyID,
			"action":   action,
		},
	})
}
