package tests

/*
FEATURE: Party Groups
DOMAIN: Guild Roster Management

ACCEPTANCE CRITERIA:
===================

AC-GROUP-001: Create Group
  GIVEN a valid name and activity type
  WHEN the group is created
  THEN it is persisted with no parties

AC-GROUP-002: Party Membership
  GIVEN a group
  WHEN parties are created inside it
  THEN the group's ordering lists them in creation order

AC-GROUP-003: Reorder Parties
  GIVEN a group with parties A and B
  WHEN the ordering is replaced with [B, A]
  THEN the new ordering is persisted
  AND an ordering missing a party or naming a stranger is rejected

AC-GROUP-004: Delete Cascades
  GIVEN a group with a party
  WHEN the group is deleted
  THEN the party is deleted with it
*/

import (
	"context"
	"testing"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/repository"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/fixtures"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/helpers"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupService(tdb *testdb.TestDB) *service.GroupService {
	return service.NewGroupService(service.GroupServiceConfig{
		GroupRepo: repository.NewGroupRepository(tdb.DB),
		PartyRepo: repository.NewPartyRepository(tdb.DB),
	})
}

func TestGroup_Create(t *testing.T) {
	// AC-GROUP-001: Create Group
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newGroupService(tdb)
	ctx := context.Background()

	group, err := svc.Create(ctx, &model.CreateGroupRequest{
		Name:        "Wave 1",
		Type:        model.PartyTypeGVG,
		Description: "First push",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Empty(t, group.PartyIDs)

	fetched, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wave 1", fetched.Name)
	assert.Equal(t, model.PartyTypeGVG, fetched.Type)
}

func TestGroup_PartyMembership(t *testing.T) {
	// AC-GROUP-002: Party Membership
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newGroupService(tdb)
	ctx := context.Background()

	group := f.CreateGroup(t, model.PartyTypeKVM)
	p1 := f.CreateParty(t, model.PartyTypeKVM, fixtures.InGroup(group))
	p2 := f.CreateParty(t, model.PartyTypeKVM, fixtures.InGroup(group))

	fetched, err := svc.Get(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{p1.ID, p2.ID}, fetched.PartyIDs)
}

func TestGroup_ReorderParties(t *testing.T) {
	// AC-GROUP-003: Reorder Parties
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newGroupService(tdb)
	ctx := context.Background()

	group := f.CreateGroup(t, model.PartyTypeKVM)
	p1 := f.CreateParty(t, model.PartyTypeKVM, fixtures.InGroup(group))
	p2 := f.CreateParty(t, model.PartyTypeKVM, fixtures.InGroup(group))

	updated, err := svc.Update(ctx, group.ID, &model.UpdateGroupRequest{
		PartyIDs: &[]string{p2.ID, p1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{p2.ID, p1.ID}, updated.PartyIDs)

	// Dropping a party from the ordering is rejected.
	_, err = svc.Update(ctx, group.ID, &model.UpdateGroupRequest{
		PartyIDs: &[]string{p1.ID},
	})
	assert.ErrorIs(t, err, service.ErrGroupOrderIncomplete)

	// Naming a party from another group is rejected.
	stranger := f.CreateParty(t, model.PartyTypeKVM)
	_, err = svc.Update(ctx, group.ID, &model.UpdateGroupRequest{
		PartyIDs: &[]string{p1.ID, stranger.ID},
	})
	assert.ErrorIs(t, err, service.ErrPartyNotInGroup)
}

func TestGroup_DeleteCascades(t *testing.T) {
	// AC-GROUP-004: Delete Cascades
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	svc := newGroupService(tdb)
	ctx := context.Background()

	group := f.CreateGroup(t, model.PartyTypeGVG)
	party := f.CreateParty(t, model.PartyTypeGVG, fixtures.InGroup(group))

	require.NoError(t, svc.Delete(ctx, group.ID))

	helpers.AssertRecordNotExists(t, tdb.DB, "group", group.ID)
	helpers.AssertRecordNotExists(t, tdb.DB, "party", party.ID)

	_, err := svc.Get(ctx, group.ID)
	assert.ErrorIs(t, err, service.ErrGroupNotFound)
}
