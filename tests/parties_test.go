package tests

/*
FEATURE: Party Slot Assignment & Swap
DOMAIN: Guild Roster Management

ACCEPTANCE CRITERIA:
===================

AC-PARTY-001: Assign To Empty Slot
  GIVEN an empty party and an unseated member
  WHEN the member is assigned to a slot
  THEN the slot holds the member

AC-PARTY-002: One Assignment Per Activity Type
  GIVEN a member already seated in a kvm party
  WHEN the member is assigned to another kvm party
  THEN the assignment is rejected
  AND the same member can still be seated for gvg

AC-PARTY-003: Occupied Slot Rejected
  GIVEN a slot already holding another member
  WHEN a different member is assigned to that slot
  THEN the assignment is rejected and both parties are unchanged

AC-PARTY-004: Move Within Party
  GIVEN a member seated in slot 1
  WHEN the member is assigned to slot 3 of the same party
  THEN slot 1 is emptied and slot 3 holds the member in one step

AC-PARTY-005: Remove Member
  GIVEN a seated member
  WHEN the member is removed
  THEN the slot is emptied
  AND removing again is a harmless no-op

AC-PARTY-006: Swap Across Parties
  GIVEN two members seated in different kvm parties
  WHEN they are swapped
  THEN each occupies the other's former slot
  AND a swap with stale asserted positions is rejected

AC-PARTY-007: Clear All
  GIVEN occupied parties of both activity types
  WHEN kvm parties are cleared
  THEN every kvm slot is empty and gvg parties are untouched

AC-PARTY-008: Commit-Time Guard
  GIVEN a slot write whose expected occupancy no longer matches
  WHEN the write is committed
  THEN it fails with a conflict and the stored slots are unchanged
*/

import (
	"context"
	"testing"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/repository"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/fixtures"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/helpers"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartyService(tdb *testdb.TestDB) *service.PartyService {
	return service.NewPartyService(service.PartyServiceConfig{
		PartyRepo:  repository.NewPartyRepository(tdb.DB),
		MemberRepo: repository.NewMemberRepository(tdb.DB),
		GroupRepo:  repository.NewGroupRepository(tdb.DB),
	})
}

func TestParty_AssignToEmptySlot(t *testing.T) {
	// AC-PARTY-001: Assign To Empty Slot
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t)

	updated, err := svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  member.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, member.ID, updated.MemberIDs[2])

	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{0, 0, member.ID, 0, 0})
}

func TestParty_AssignLeaderSlot(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t)

	// IsLeader overrides the slot index.
	updated, err := svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  member.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 4,
		IsLeader:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, member.ID, updated.MemberIDs[model.LeaderSlot])
	assert.Equal(t, member.ID, updated.Leader())
}

func TestParty_OneAssignmentPerActivityType(t *testing.T) {
	// AC-PARTY-002: One Assignment Per Activity Type
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	member := f.CreateMember(t)
	party1 := f.CreateParty(t, model.PartyTypeKVM)
	party2 := f.CreateParty(t, model.PartyTypeKVM)
	f.Seat(t, party1, 0, member)

	_, err := svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  member.ID,
		PartyID:   party2.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 0,
	})
	assert.ErrorIs(t, err, service.ErrMemberAlreadyAssigned)
	helpers.AssertSlots(t, tdb.DB, party2.ID, [model.PartySize]int64{})

	// The kvm seat does not block a gvg assignment.
	gvgParty := f.CreateParty(t, model.PartyTypeGVG)
	_, err = svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  member.ID,
		PartyID:   gvgParty.ID,
		PartyType: model.PartyTypeGVG,
		SlotIndex: 1,
	})
	require.NoError(t, err)
	helpers.AssertSlots(t, tdb.DB, gvgParty.ID, [model.PartySize]int64{0, member.ID, 0, 0, 0})
}

func TestParty_OccupiedSlotRejected(t *testing.T) {
	// AC-PARTY-003: Occupied Slot Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	occupant := f.CreateMember(t)
	challenger := f.CreateMember(t)
	f.Seat(t, party, 1, occupant)

	_, err := svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  challenger.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 1,
	})
	assert.ErrorIs(t, err, service.ErrSlotOccupied)
	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{0, occupant.ID, 0, 0, 0})
}

func TestParty_MoveWithinParty(t *testing.T) {
	// AC-PARTY-004: Move Within Party
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t)
	f.Seat(t, party, 1, member)

	updated, err := svc.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  member.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.MemberIDs[1])
	assert.Equal(t, member.ID, updated.MemberIDs[3])

	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{0, 0, 0, member.ID, 0})
}

func TestParty_RemoveMember(t *testing.T) {
	// AC-PARTY-005: Remove Member
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t)
	f.Seat(t, party, 4, member)

	updated, err := svc.Remove(ctx, &model.RemoveMemberRequest{
		MemberID:  member.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
	})
	require.NoError(t, err)
	assert.Equal(t, [model.PartySize]int64{}, updated.MemberIDs)

	// Removing an absent member is an idempotent no-op.
	_, err = svc.Remove(ctx, &model.RemoveMemberRequest{
		MemberID:  member.ID,
		PartyID:   party.ID,
		PartyType: model.PartyTypeKVM,
	})
	require.NoError(t, err)
}

func TestParty_SwapAcrossParties(t *testing.T) {
	// AC-PARTY-006: Swap Across Parties
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party1 := f.CreateParty(t, model.PartyTypeKVM)
	party2 := f.CreateParty(t, model.PartyTypeKVM)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party1, 0, m1)
	f.Seat(t, party2, 3, m2)

	err := svc.Swap(ctx, &model.SwapMembersRequest{
		Member1ID:        m1.ID,
		Member1PartyID:   party1.ID,
		Member1SlotIndex: 0,
		Member2ID:        m2.ID,
		Member2PartyID:   party2.ID,
		Member2SlotIndex: 3,
		PartyType:        model.PartyTypeKVM,
	})
	require.NoError(t, err)

	helpers.AssertSlots(t, tdb.DB, party1.ID, [model.PartySize]int64{m2.ID, 0, 0, 0, 0})
	helpers.AssertSlots(t, tdb.DB, party2.ID, [model.PartySize]int64{0, 0, 0, m1.ID, 0})
}

func TestParty_SwapStalePositionsRejected(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party1 := f.CreateParty(t, model.PartyTypeKVM)
	party2 := f.CreateParty(t, model.PartyTypeKVM)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party1, 0, m1)
	f.Seat(t, party2, 3, m2)

	// Assert m2 in the wrong slot; the swap must not commit.
	err := svc.Swap(ctx, &model.SwapMembersRequest{
		Member1ID:        m1.ID,
		Member1PartyID:   party1.ID,
		Member1SlotIndex: 0,
		Member2ID:        m2.ID,
		Member2PartyID:   party2.ID,
		Member2SlotIndex: 1,
		PartyType:        model.PartyTypeKVM,
	})
	assert.ErrorIs(t, err, service.ErrMemberNotSeated)

	helpers.AssertSlots(t, tdb.DB, party1.ID, [model.PartySize]int64{m1.ID, 0, 0, 0, 0})
	helpers.AssertSlots(t, tdb.DB, party2.ID, [model.PartySize]int64{0, 0, 0, m2.ID, 0})
}

func TestParty_SwapWithinParty(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeGVG)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party, 0, m1)
	f.Seat(t, party, 2, m2)

	err := svc.Swap(ctx, &model.SwapMembersRequest{
		Member1ID:        m1.ID,
		Member1PartyID:   party.ID,
		Member1SlotIndex: 0,
		Member2ID:        m2.ID,
		Member2PartyID:   party.ID,
		Member2SlotIndex: 2,
		PartyType:        model.PartyTypeGVG,
	})
	require.NoError(t, err)

	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{m2.ID, 0, m1.ID, 0, 0})
}

func TestParty_ClearAllScoped(t *testing.T) {
	// AC-PARTY-007: Clear All
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	kvmParty, _ := f.CreateFullParty(t, model.PartyTypeKVM)
	gvgParty, gvgMembers := f.CreateFullParty(t, model.PartyTypeGVG)

	err := svc.ClearAll(ctx, &model.ClearPartiesRequest{
		PartyType: helpers.PartyTypePtr(model.PartyTypeKVM),
	})
	require.NoError(t, err)

	helpers.AssertSlots(t, tdb.DB, kvmParty.ID, [model.PartySize]int64{})
	helpers.AssertSlots(t, tdb.DB, gvgParty.ID, [model.PartySize]int64{
		gvgMembers[0].ID, gvgMembers[1].ID, gvgMembers[2].ID, gvgMembers[3].ID, gvgMembers[4].ID,
	})
}

func TestParty_CommitTimeGuard(t *testing.T) {
	// AC-PARTY-008: Commit-Time Guard
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	partyRepo := repository.NewPartyRepository(tdb.DB)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party, 0, m1)

	// Expected occupancy claims the party is still empty; the stored
	// state moved on, so the guard must refuse the write.
	var stale [model.PartySize]int64
	next := stale
	next[1] = m2.ID

	err := partyRepo.ReplaceSlots(ctx, party.ID, party.Type, stale, next, nil)
	assert.ErrorIs(t, err, database.ErrConflict)

	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{m1.ID, 0, 0, 0, 0})
}

func TestParty_GetWithMembers(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newPartyService(tdb)
	ctx := context.Background()

	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t, fixtures.WithClass("Acolyte"))
	f.Seat(t, party, 2, member)

	enriched, err := svc.GetWithMembers(ctx, party.ID)
	require.NoError(t, err)
	require.Len(t, enriched.Members, 1)
	assert.Equal(t, member.ID, enriched.Members[0].ID)
	assert.Equal(t, "Acolyte", enriched.Members[0].Class)
}
