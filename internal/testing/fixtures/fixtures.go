// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	member := f.CreateMember(t)
//	party := f.CreateParty(t, model.PartyTypeKVM)
//	f.Seat(t, party, 0, member)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db      database.Database
	members *repository.MemberRepository
	parties *repository.PartyRepository
	groups  *repository.GroupRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:      db,
		members: repository.NewMemberRepository(db),
		parties: repository.NewPartyRepository(db),
		groups:  repository.NewGroupRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// Member Fixtures
// ============================================================================

// MemberOpts customizes member creation
type MemberOpts struct {
	Name  string
	Class string
}

// CreateMember creates a roster member with optional customizations
func (f *Factory) CreateMember(t *testing.T, opts ...func(*MemberOpts)) *model.Member {
	t.Helper()

	o := &MemberOpts{
		Name:  fmt.Sprintf("member_%s", randomID()),
		Class: "Swordsman",
	}
	for _, fn := range opts {
		fn(o)
	}

	member := &model.Member{
		Name:  o.Name,
		Class: o.Class,
	}
	if err := f.members.Create(ctx(), member); err != nil {
		t.Fatalf("fixtures: failed to create member: %v", err)
	}
	return member
}

// WithName sets the member name
func WithName(name string) func(*MemberOpts) {
	return func(o *MemberOpts) { o.Name = name }
}

// WithClass sets the member class
func WithClass(class string) func(*MemberOpts) {
	return func(o *MemberOpts) { o.Class = class }
}

// CreateMembers creates n members in one call
func (f *Factory) CreateMembers(t *testing.T, n int) []*model.Member {
	t.Helper()

	members := make([]*model.Member, 0, n)
	for i := 0; i < n; i++ {
		members = append(members, f.CreateMember(t))
	}
	return members
}

// ============================================================================
// Party Fixtures
// ============================================================================

// PartyOpts customizes party creation
type PartyOpts struct {
	Name    string
	GroupID string
}

// CreateParty creates an empty party of the given activity type
func (f *Factory) CreateParty(t *testing.T, partyType model.PartyType, opts ...func(*PartyOpts)) *model.Party {
	t.Helper()

	o := &PartyOpts{
		Name: fmt.Sprintf("party_%s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	party := &model.Party{
		Name:    o.Name,
		Type:    partyType,
		GroupID: o.GroupID,
	}
	if err := f.parties.Create(ctx(), party); err != nil {
		t.Fatalf("fixtures: failed to create party: %v", err)
	}
	return party
}

// WithPartyName sets the party name
func WithPartyName(name string) func(*PartyOpts) {
	return func(o *PartyOpts) { o.Name = name }
}

// InGroup places the party in an existing group
func InGroup(group *model.Group) func(*PartyOpts) {
	return func(o *PartyOpts) { o.GroupID = group.ID }
}

// Seat places a member into a slot of the party, bypassing service rules.
// The party's in-memory slot array is updated to match.
func (f *Factory) Seat(t *testing.T, party *model.Party, slot int, member *model.Member) {
	t.Helper()

	if slot < 0 || slot >= model.PartySize {
		t.Fatalf("fixtures: invalid slot %d", slot)
	}

	next := party.MemberIDs
	next[slot] = member.ID
	if err := f.parties.ReplaceSlots(ctx(), party.ID, party.Type, party.MemberIDs, next, nil); err != nil {
		t.Fatalf("fixtures: failed to seat member: %v", err)
	}
	party.MemberIDs = next
}

// CreateFullParty creates a party with all five slots occupied by new members.
// The returned members are ordered by slot, leader first.
func (f *Factory) CreateFullParty(t *testing.T, partyType model.PartyType) (*model.Party, []*model.Member) {
	t.Helper()

	party := f.CreateParty(t, partyType)
	members := f.CreateMembers(t, model.PartySize)
	for i, m := range members {
		f.Seat(t, party, i, m)
	}
	return party, members
}

// ============================================================================
// Group Fixtures
// ============================================================================

// GroupOpts customizes group creation
type GroupOpts struct {
	Name        string
	Description string
}

// CreateGroup creates a party group of the given activity type
func (f *Factory) CreateGroup(t *testing.T, partyType model.PartyType, opts ...func(*GroupOpts)) *model.Group {
	t.Helper()

	o := &GroupOpts{
		Name: fmt.Sprintf("group_%s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	group := &model.Group{
		Name:        o.Name,
		Type:        partyType,
		Description: o.Description,
	}
	if err := f.groups.Create(ctx(), group); err != nil {
		t.Fatalf("fixtures: failed to create group: %v", err)
	}
	return group
}

// WithGroupName sets the group name
func WithGroupName(name string) func(*GroupOpts) {
	return func(o *GroupOpts) { o.Name = name }
}

// WithDescription sets the group description
func WithDescription(desc string) func(*GroupOpts) {
	return func(o *GroupOpts) { o.Description = desc }
}
