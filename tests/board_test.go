package tests

/*
FEATURE: Drag-Drop Board Over HTTP
DOMAIN: Client Reconciliation

ACCEPTANCE CRITERIA:
===================

AC-BOARD-001: Load And Drop
  GIVEN a running API and a loaded board
  WHEN a pool member is dropped onto an empty slot
  THEN the assignment commits and the board reloads the new layout

AC-BOARD-002: Swap Via Drop
  GIVEN two seated members
  WHEN one is dropped onto the other's slot
  THEN their positions are exchanged atomically

AC-BOARD-003: Conflict Forces Resync
  GIVEN a board whose snapshot went stale behind its back
  WHEN a swap drop hits the stale occupancy
  THEN the server rejects it with a conflict
  AND the board discards the plan and reloads to a consistent state
  AND the discarded plan is never replayed

AC-BOARD-004: Unassigned Pool Over HTTP
  GIVEN seated and unseated members
  WHEN the board derives its unassigned pool
  THEN it matches the server-side roster
*/

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/board"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/handler"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/repository"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/fixtures"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/helpers"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/testing/testdb"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer wires the full HTTP stack against the test database and
// returns a server the board client can talk to.
func newAPIServer(t *testing.T, tdb *testdb.TestDB) *httptest.Server {
	t.Helper()

	memberRepo := repository.NewMemberRepository(tdb.DB)
	partyRepo := repository.NewPartyRepository(tdb.DB)
	groupRepo := repository.NewGroupRepository(tdb.DB)

	catalog := service.NewClassCatalog(service.DefaultClasses)
	memberService := service.NewMemberService(service.MemberServiceConfig{
		MemberRepo: memberRepo,
		PartyRepo:  partyRepo,
		Catalog:    catalog,
	})
	partyService := service.NewPartyService(service.PartyServiceConfig{
		PartyRepo:  partyRepo,
		MemberRepo: memberRepo,
		GroupRepo:  groupRepo,
	})

	v := validator.New()
	memberHandler := handler.NewMemberHandler(memberService, catalog, v)
	partyHandler := handler.NewPartyHandler(partyService, v)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/members", memberHandler.List)
	mux.HandleFunc("GET /v1/parties", partyHandler.List)
	mux.HandleFunc("POST /v1/parties/assign", partyHandler.Assign)
	mux.HandleFunc("POST /v1/parties/remove", partyHandler.Remove)
	mux.HandleFunc("POST /v1/parties/swap", partyHandler.Swap)
	mux.HandleFunc("POST /v1/parties/clear", partyHandler.Clear)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestBoard_LoadAndDrop(t *testing.T) {
	// AC-BOARD-001: Load And Drop
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	party := f.CreateParty(t, model.PartyTypeKVM)
	member := f.CreateMember(t)

	server := newAPIServer(t, tdb)
	b := board.NewBoard(board.NewClient(server.URL + "/v1"), model.PartyTypeKVM)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Equal(t, board.SyncConsistent, b.State())
	require.Len(t, b.Unassigned(), 1)

	result, err := b.Drop(ctx, member.ID, nil, board.SlotRef{PartyID: party.ID, Slot: 2})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, board.PlanAssign, result.Plan.Kind)

	// Board snapshot reflects the committed layout.
	assert.Empty(t, b.Unassigned())
	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{0, 0, member.ID, 0, 0})
}

func TestBoard_SwapViaDrop(t *testing.T) {
	// AC-BOARD-002: Swap Via Drop
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	party1 := f.CreateParty(t, model.PartyTypeKVM)
	party2 := f.CreateParty(t, model.PartyTypeKVM)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party1, 0, m1)
	f.Seat(t, party2, 3, m2)

	server := newAPIServer(t, tdb)
	b := board.NewBoard(board.NewClient(server.URL + "/v1"), model.PartyTypeKVM)
	ctx := context.Background()
	require.NoError(t, b.Load(ctx))

	result, err := b.Drop(ctx, m1.ID, nil, board.SlotRef{PartyID: party2.ID, Slot: 3})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, board.PlanSwap, result.Plan.Kind)

	helpers.AssertSlots(t, tdb.DB, party1.ID, [model.PartySize]int64{m2.ID, 0, 0, 0, 0})
	helpers.AssertSlots(t, tdb.DB, party2.ID, [model.PartySize]int64{0, 0, 0, m1.ID, 0})
}

func TestBoard_ConflictForcesResync(t *testing.T) {
	// AC-BOARD-003: Conflict Forces Resync
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	party1 := f.CreateParty(t, model.PartyTypeKVM)
	party2 := f.CreateParty(t, model.PartyTypeKVM)
	m1 := f.CreateMember(t)
	m2 := f.CreateMember(t)
	f.Seat(t, party1, 0, m1)
	f.Seat(t, party2, 3, m2)

	server := newAPIServer(t, tdb)
	b := board.NewBoard(board.NewClient(server.URL + "/v1"), model.PartyTypeKVM)
	ctx := context.Background()
	require.NoError(t, b.Load(ctx))

	// Another client moves m2 behind the board's back.
	rival := newPartyService(tdb)
	_, err := rival.Remove(ctx, &model.RemoveMemberRequest{
		MemberID:  m2.ID,
		PartyID:   party2.ID,
		PartyType: model.PartyTypeKVM,
	})
	require.NoError(t, err)
	_, err = rival.Assign(ctx, &model.AssignMemberRequest{
		MemberID:  m2.ID,
		PartyID:   party2.ID,
		PartyType: model.PartyTypeKVM,
		SlotIndex: 1,
	})
	require.NoError(t, err)

	// The board still believes m2 sits in slot 3. The swap must be
	// rejected by the commit-time guard and the plan discarded.
	result, err := b.Drop(ctx, m1.ID, nil, board.SlotRef{PartyID: party2.ID, Slot: 3})
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.True(t, result.Resynced)

	// Resync succeeded against a live server, so the board is usable
	// again and holds the rival's layout. Nothing was replayed.
	assert.Equal(t, board.SyncConsistent, b.State())
	helpers.AssertSlots(t, tdb.DB, party1.ID, [model.PartySize]int64{m1.ID, 0, 0, 0, 0})
	helpers.AssertSlots(t, tdb.DB, party2.ID, [model.PartySize]int64{0, m2.ID, 0, 0, 0})
}

func TestBoard_UnassignedPoolOverHTTP(t *testing.T) {
	// AC-BOARD-004: Unassigned Pool Over HTTP
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	party := f.CreateParty(t, model.PartyTypeKVM)
	seated := f.CreateMember(t)
	free := f.CreateMember(t)
	f.Seat(t, party, 0, seated)

	server := newAPIServer(t, tdb)
	b := board.NewBoard(board.NewClient(server.URL + "/v1"), model.PartyTypeKVM)
	require.NoError(t, b.Load(context.Background()))

	pool := b.Unassigned()
	require.Len(t, pool, 1)
	assert.Equal(t, free.ID, pool[0].ID)
}

func TestBoard_ClearOverHTTP(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	party, members := f.CreateFullParty(t, model.PartyTypeKVM)

	server := newAPIServer(t, tdb)
	b := board.NewBoard(board.NewClient(server.URL + "/v1"), model.PartyTypeKVM)
	ctx := context.Background()
	require.NoError(t, b.Load(ctx))

	scope := model.PartyTypeKVM
	require.NoError(t, b.Clear(ctx, &scope))

	helpers.AssertSlots(t, tdb.DB, party.ID, [model.PartySize]int64{})
	assert.Len(t, b.Unassigned(), len(members))
}
