package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// GroupRepository defines the interface for group storage
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetByID(ctx context.Context, id string) (*model.Group, error)
	ListByType(ctx context.Context, partyType model.PartyType) ([]model.Group, error)
	ListAll(ctx context.Context) ([]model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id string) error
}

// GroupPartyRepository is the slice of party storage groups need to
// validate their ordering lists
type GroupPartyRepository interface {
	ListByGroup(ctx context.Context, groupID string) ([]model.Party, error)
}

// GroupService handles group business logic
type GroupService struct {
	repo      GroupRepository
	partyRepo GroupPartyRepository
	events    *EventHub
}

// GroupServiceConfig holds configuration for the group service
type GroupServiceConfig struct {
	GroupRepo GroupRepository
	PartyRepo GroupPartyRepository
	Events    *EventHub
}

// NewGroupService creates a new group service
func NewGroupService(cfg GroupServiceConfig) *GroupService {
	return &GroupService{
		repo:      cfg.GroupRepo,
		partyRepo: cfg.PartyRepo,
		events:    cfg.Events,
	}
}

// Create creates a new, empty group
func (s *GroupService) Create(ctx context.Context, req *model.CreateGroupRequest) (*model.Group, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) > model.MaxGroupNameLength {
		return nil, ErrGroupNameTooLong
	}
	if len(req.Description) > model.MaxGroupDescLength {
		return nil, ErrGroupDescTooLong
	}
	if !req.Type.IsValid() {
		return nil, ErrInvalidPartyType
	}

	group := &model.Group{
		Name:        name,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.publishGroupUpdated(group.ID, "created")
	return group, nil
}

// Get retrieves a group by ID
func (s *GroupService) Get(ctx context.Context, id string) (*model.Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// ListByType retrieves all groups of one type in creation order
func (s *GroupService) ListByType(ctx context.Context, partyType model.PartyType) ([]model.Group, error) {
	if !partyType.IsValid() {
		return nil, ErrInvalidPartyType
	}
	groups, err := s.repo.ListByType(ctx, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// ListAll retrieves every group in creation order
func (s *GroupService) ListAll(ctx context.Context) ([]model.Group, error) {
	groups, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// Update updates a group's name, description, and party ordering. A new
// ordering must be a permutation of the group's actual parties.
func (s *GroupService) Update(ctx context.Context, id string, req *model.UpdateGroupRequest) (*model.Group, error) {
	group, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) > model.MaxGroupNameLength {
			return nil, ErrGroupNameTooLong
		}
		group.Name = name
	}
	if req.Description != nil {
		if len(*req.Description) > model.MaxGroupDescLength {
			return nil, ErrGroupDescTooLong
		}
		group.Description = *req.Description
	}
	if req.PartyIDs != nil {
		if err := s.validateOrdering(ctx, group.ID, *req.PartyIDs); err != nil {
			return nil, err
		}
		group.PartyIDs = *req.PartyIDs
	}

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	s.publishGroupUpdated(group.ID, "updated")
	return group, nil
}

// Delete deletes a group together with every party in it
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	s.publishGroupUpdated(id, "deleted")
	return nil
}

// validateOrdering checks that the ordering lists exactly the parties
// that belong to the group, each once
func (s *GroupService) validateOrdering(ctx context.Context, groupID string, ordering []string) error {
	parties, err := s.partyRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to list group parties: %w", err)
	}

	actual := make(map[string]struct{}, len(parties))
	for i := range parties {
		actual[parties[i].ID] = struct{}{}
	}
	if len(ordering) != len(actual) {
		return ErrGroupOrderIncomplete
	}
	seen := make(map[string]struct{}, len(ordering))
	for _, id := range ordering {
		if _, ok := actual[id]; !ok {
			return ErrPartyNotInGroup
		}
		if _, dup := seen[id]; dup {
			return ErrGroupOrderIncomplete
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *GroupService) publishGroupUpdated(groupID, action string) {
	if s.events == nil {
		return
	}
	s.events.Publish(&Event{
		Type: EventGroupUpdated,
		Data: map[string]interface{}{
			"group_id": groupID,
			"action":   action,
		},
	})
}
