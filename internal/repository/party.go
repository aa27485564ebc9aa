package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// PartyRepository handles party data access, including the guarded slot
// mutations that keep the one-assignment-per-type invariant intact under
// concurrent writers.
type PartyRepository struct {
	db database.Database
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db database.Database) *PartyRepository {
	return &PartyRepository{db: db}
}

// emptySlots is the slot array of a freshly created or cleared party.
var emptySlots = [model.PartySize]int64{}

// Create creates a new party with all slots empty. When the party
// belongs to a group, the group's ordering list is extended as well.
func (r *PartyRepository) Create(ctx context.Context, party *model.Party) error {
	query := `
		CREATE party CONTENT {
			name: $name,
			type: $type,
			group_id: IF $group_id IS NOT NULL THEN $group_id ELSE NONE END,
			member_ids: $member_ids,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":       party.Name,
		"type":       string(party.Type),
		"group_id":   nilIfEmpty(party.GroupID),
		"member_ids": slotSlice(emptySlots),
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: party name already exists", database.ErrDuplicate)
		}
		return err
	}

	created, found := firstPartyResult(results)
	if !found {
		return fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}
	party.ID = created.ID
	party.MemberIDs = created.MemberIDs
	party.CreatedOn = created.CreatedOn
	party.UpdatedOn = created.UpdatedOn

	if party.GroupID != "" {
		appendQuery := `
			UPDATE type::record($group_id) SET
				party_ids += $party_id,
				updated_on = time::now()
		`
		appendVars := map[string]interface{}{
			"group_id": party.GroupID,
			"party_id": party.ID,
		}
		if err := r.db.Execute(ctx, appendQuery, appendVars); err != nil {
			return err
		}
	}
	return nil
}

// GetByID retrieves a party by ID. Returns nil when the party does not
// exist.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*model.Party, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected party result format", database.ErrQuery)
	}

	party := parsePartyFromData(data)
	return &party, nil
}

// ListByType retrieves all parties of one type in creation order
func (r *PartyRepository) ListByType(ctx context.Context, partyType model.PartyType) ([]model.Party, error) {
	query := `SELECT * FROM party WHERE type = $type ORDER BY created_on ASC`
	vars := map[string]interface{}{"type": string(partyType)}
	return r.queryParties(ctx, query, vars)
}

// ListAll retrieves every party across both types in creation order
func (r *PartyRepository) ListAll(ctx context.Context) ([]model.Party, error) {
	query := `SELECT * FROM party ORDER BY created_on ASC`
	return r.queryParties(ctx, query, nil)
}

// ListByGroup retrieves the parties belonging to a group in creation
// order. The group's own party_ids list carries display order; this is
// the membership view.
func (r *PartyRepository) ListByGroup(ctx context.Context, groupID string) ([]model.Party, error) {
	query := `SELECT * FROM party WHERE group_id = type::record($group_id) ORDER BY created_on ASC`
	vars := map[string]interface{}{"group_id": groupID}
	return r.queryParties(ctx, query, vars)
}

// Update updates a party's name and group reference. Slot contents only
// change through the guarded mutations below.
func (r *PartyRepository) Update(ctx context.Context, party *model.Party) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			group_id = IF $group_id IS NOT NULL THEN $group_id ELSE NONE END,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":       party.ID,
		"name":     party.Name,
		"group_id": nilIfEmpty(party.GroupID),
	}
	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a party and removes it from its group's ordering list
func (r *PartyRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE group SET party_ids -= $party_id, updated_on = time::now() WHERE party_ids CONTAINS $party_id`,
		map[string]interface{}{"party_id": id},
	)
	batch.Add(
		`DELETE type::record($party_id)`,
		map[string]interface{}{"party_id": id},
	)
	return batch.Execute(ctx, r.db)
}

// Thrown precondition messages shared by the guarded mutations.
const (
	thrownPartyMissing    = "party_missing"
	thrownSlotsChanged    = "slots_changed"
	thrownAlreadyAssigned = "member_already_assigned"
)

// guardedUpdate is a single party's compare-and-set: the write only
// lands if the slot array still matches what the caller read.
const guardedUpdate = `
	LET $current = (SELECT VALUE member_ids FROM type::record($party_id))[0];
	IF $current == NONE { THROW "party_missing" };
	IF $current != $expected { THROW "slots_changed" };
	UPDATE type::record($party_id) SET member_ids = $next, updated_on = time::now()
`

// mustBeFreeGuard rejects the write when any of the incoming members is
// already seated in another party of the same type.
const mustBeFreeGuard = `
	LET $clash = (SELECT VALUE id FROM party WHERE type = $party_type AND id != type::record($party_id) AND array::len(array::intersect(member_ids, $must)) > 0);
	IF array::len($clash) > 0 { THROW "member_already_assigned" }
`

// ReplaceSlots atomically replaces a party's slot array, provided it
// still equals expected at commit time. Members listed in mustBeFree are
// additionally checked against every other party of the same type, so a
// racing assignment elsewhere aborts this one.
//
// Returns database.ErrNotFound when the party vanished and
// database.ErrConflict when either precondition fails.
func (r *PartyRepository) ReplaceSlots(ctx context.Context, partyID string, partyType model.PartyType, expected, next [model.PartySize]int64, mustBeFree []int64) error {
	tb := database.NewTxBuilder()
	if len(mustBeFree) > 0 {
		tb.Add(mustBeFreeGuard, map[string]interface{}{
			"party_type": string(partyType),
			"party_id":   partyID,
			"must":       mustBeFree,
		})
	}
	tb.Add(guardedUpdate, map[string]interface{}{
		"party_id": partyID,
		"expected": slotSlice(expected),
		"next":     slotSlice(next),
	})

	_, err := database.ExecuteTransaction(ctx, r.db, tb)
	return mapGuardError(err)
}

// SwapSlots applies guarded slot replacements to two parties inside one
// transaction. Either both land or neither does, so a cross-party swap
// can never leave a member seated twice or nowhere.
func (r *PartyRepository) SwapSlots(ctx context.Context, party1ID string, expected1, next1 [model.PartySize]int64, party2ID string, expected2, next2 [model.PartySize]int64) error {
	tb := database.NewTxBuilder()
	tb.Add(guardedUpdate, map[string]interface{}{
		"party_id": party1ID,
		"expected": slotSlice(expected1),
		"next":     slotSlice(next1),
	})
	tb.Add(guardedUpdate, map[string]interface{}{
		"party_id": party2ID,
		"expected": slotSlice(expected2),
		"next":     slotSlice(next2),
	})

	_, err := database.ExecuteTransaction(ctx, r.db, tb)
	return mapGuardError(err)
}

// ClearSlots empties every slot of every party of one type, or of all
// types when partyType is nil. The parties themselves survive.
func (r *PartyRepository) ClearSlots(ctx context.Context, partyType *model.PartyType) error {
	vars := map[string]interface{}{
		"member_ids": slotSlice(emptySlots),
	}
	query := `UPDATE party SET member_ids = $member_ids, updated_on = time::now()`
	if partyType != nil {
		query += ` WHERE type = $type`
		vars["type"] = string(*partyType)
	}
	return r.db.Execute(ctx, query, vars)
}

// VacateMember empties any slot holding the member, across both party
// types. All updates run in one transaction; a deleted member never
// lingers in a roster.
func (r *PartyRepository) VacateMember(ctx context.Context, memberID int64) error {
	batch := database.NewAtomicBatch()
	for slot := 0; slot < model.PartySize; slot++ {
		query := fmt.Sprintf(
			`UPDATE party SET member_ids[%d] = $empty, updated_on = time::now() WHERE member_ids[%d] = $member`,
			slot, slot,
		)
		batch.Add(query, map[string]interface{}{
			"empty":  model.EmptySlot,
			"member": memberID,
		})
	}
	return batch.Execute(ctx, r.db)
}

// mapGuardError translates THROW messages from the guarded mutations
// into the database sentinels callers branch on.
func mapGuardError(err error) error {
	switch {
	case err == nil:
		return nil
	case isThrown(err, thrownPartyMissing):
		return fmt.Errorf("%w: party no longer exists", database.ErrNotFound)
	case isThrown(err, thrownSlotsChanged):
		return fmt.Errorf("%w: party slots changed", database.ErrConflict)
	case isThrown(err, thrownAlreadyAssigned):
		return fmt.Errorf("%w: member already assigned in another party", database.ErrConflict)
	default:
		return err
	}
}

func (r *PartyRepository) queryParties(ctx context.Context, query string, vars map[string]interface{}) ([]model.Party, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	parties := make([]model.Party, 0)
	for _, item := range extractQueryResults(results) {
		if data, ok := item.(map[string]interface{}); ok {
			parties = append(parties, parsePartyFromData(data))
		}
	}
	return parties, nil
}

// firstPartyResult pulls the first party record out of a query response
func firstPartyResult(results []interface{}) (model.Party, bool) {
	for _, item := range extractQueryResults(results) {
		if data, ok := item.(map[string]interface{}); ok {
			if _, hasID := data["id"]; hasID {
				return parsePartyFromData(data), true
			}
		}
	}
	return model.Party{}, false
}

// parsePartyFromData maps a party record onto the model
func parsePartyFromData(data map[string]interface{}) model.Party {
	return model.Party{
		ID:        extractRecordID(data["id"]),
		Name:      getString(data, "name"),
		Type:      model.PartyType(getString(data, "type")),
		GroupID:   extractRecordID(data["group_id"]),
		MemberIDs: getSlotArray(data, "member_ids"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}
