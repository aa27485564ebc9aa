package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// RosterMemberRepository defines the interface for member storage
type RosterMemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id int64) error
}

// RosterPartyRepository is the slice of party storage the roster needs:
// unassigned listings read by type, and deletions vacate slots.
type RosterPartyRepository interface {
	ListByType(ctx context.Context, partyType model.PartyType) ([]model.Party, error)
	VacateMember(ctx context.Context, memberID int64) error
}

// MemberService handles roster business logic
type MemberService struct {
	repo      RosterMemberRepository
	partyRepo RosterPartyRepository
	catalog   *ClassCatalog
	events    *EventHub
}

// MemberServiceConfig holds configuration for the member service
type MemberServiceConfig struct {
	MemberRepo RosterMemberRepository
	PartyRepo  RosterPartyRepository
	Catalog    *ClassCatalog
	Events     *EventHub
}

// NewMemberService creates a new member service
func NewMemberService(cfg MemberServiceConfig) *MemberService {
	return &MemberService{
		repo:      cfg.MemberRepo,
		partyRepo: cfg.PartyRepo,
		catalog:   cfg.Catalog,
		events:    cfg.Events,
	}
}

// Create adds a member to the roster
func (s *MemberService) Create(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) > model.MaxMemberNameLength {
		return nil, ErrMemberNameTooLong
	}
	if !s.catalog.IsValid(req.Class) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, req.Class)
	}

	member := &model.Member{
		Name:  name,
		Class: s.catalog.Canonical(req.Class),
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.publishRosterUpdated(member.ID, "created")
	return member, nil
}

// Get retrieves a member by ID
func (s *MemberService) Get(ctx context.Context, id int64) (*model.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// List retrieves the full roster in creation order
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// Update updates a member's name and class
func (s *MemberService) Update(ctx context.Context, id int64, req *model.UpdateMemberRequest) (*model.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) > model.MaxMemberNameLength {
			return nil, ErrMemberNameTooLong
		}
		member.Name = name
	}
	if req.Class != nil {
		if !s.catalog.IsValid(*req.Class) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownClass, *req.Class)
		}
		member.Class = s.catalog.Canonical(*req.Class)
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.publishRosterUpdated(member.ID, "updated")
	return member, nil
}

// Delete removes a member from the roster. Any slot the member holds,
// in either party type, is emptied first so no party keeps a dangling
// id.
func (s *MemberService) Delete(ctx context.Context, id int64) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return ErrMemberNotFound
	}

	if err := s.partyRepo.VacateMember(ctx, id); err != nil {
		return fmt.Errorf("failed to vacate member slots: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	s.publishRosterUpdated(id, "deleted")
	return nil
}

// Unassigned lists roster members not seated in any party of the given
// type, in roster order
func (s *MemberService) Unassigned(ctx context.Context, partyType model.PartyType) ([]model.Member, error) {
	if !partyType.IsValid() {
		return nil, ErrInvalidPartyType
	}

	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	parties, err := s.partyRepo.ListByType(ctx, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	return model.UnassignedMembers(members, parties, partyType), nil
}

func (s *MemberService) publishRosterUpdated(memberID int64, action string) {
	if s.events == nil {
		return
	}
	s.events.Publish(&Event{
		Type: EventRosterUpdated,
		Data: map[string]interface{}{
			"member_id": memberID,
			"action":    action,
		},
	})
}
