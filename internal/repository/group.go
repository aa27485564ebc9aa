package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// GroupRepository handles party group data access
type GroupRepository struct {
	db database.Database
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new group
func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		CREATE group CONTENT {
			name: $name,
			type: $type,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			party_ids: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"name":        group.Name,
		"type":        string(group.Type),
		"description": nilIfEmpty(group.Description),
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: group name already exists", database.ErrDuplicate)
		}
		return err
	}

	for _, item := range extractQueryResults(results) {
		data, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, hasID := data["id"]; !hasID {
			continue
		}
		created := parseGroupFromData(data)
		group.ID = created.ID
		group.PartyIDs = created.PartyIDs
		group.CreatedOn = created.CreatedOn
		group.UpdatedOn = created.UpdatedOn
		return nil
	}

	return fmt.Errorf("%w: create returned no record", database.ErrQuery)
}

// GetByID retrieves a group by ID. Returns nil when the group does not
// exist.
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
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
		return nil, fmt.Errorf("%w: unexpected group result format", database.ErrQuery)
	}

	group := parseGroupFromData(data)
	return &group, nil
}

// ListByType retrieves all groups of one type in creation order
func (r *GroupRepository) ListByType(ctx context.Context, partyType model.PartyType) ([]model.Group, error) {
	query := `SELECT * FROM group WHERE type = $type ORDER BY created_on ASC`
	vars := map[string]interface{}{"type": string(partyType)}
	return r.queryGroups(ctx, query, vars)
}

// ListAll retrieves every group in creation order
func (r *GroupRepository) ListAll(ctx context.Context) ([]model.Group, error) {
	query := `SELECT * FROM group ORDER BY created_on ASC`
	return r.queryGroups(ctx, query, nil)
}

// Update updates a group's name, description, and party ordering
func (r *GroupRepository) Update(ctx context.Context, group *model.Group) error {
	partyIDs := make([]string, 0, len(group.PartyIDs))
	partyIDs = append(partyIDs, group.PartyIDs...)

	// party_ids is stored as plain id strings; it carries display order,
	// not graph links.
	query := `
		UPDATE type::record($id) SET
			name = $name,
			description = IF $description IS NOT NULL THEN $description ELSE NONE END,
			party_ids = $party_ids,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":          group.ID,
		"name":        group.Name,
		"description": nilIfEmpty(group.Description),
		"party_ids":   partyIDs,
	}
	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a group and every party it contains, atomically
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`DELETE party WHERE group_id = type::record($group_id)`,
		map[string]interface{}{"group_id": id},
	)
	batch.Add(
		`DELETE type::record($group_id)`,
		map[string]interface{}{"group_id": id},
	)
	return batch.Execute(ctx, r.db)
}

func (r *GroupRepository) queryGroups(ctx context.Context, query string, vars map[string]interface{}) ([]model.Group, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	groups := make([]model.Group, 0)
	for _, item := range extractQueryResults(results) {
		if data, ok := item.(map[string]interface{}); ok {
			groups = append(groups, parseGroupFromData(data))
		}
	}
	return groups, nil
}

// parseGroupFromData maps a group record onto the model
func parseGroupFromData(data map[string]interface{}) model.Group {
	return model.Group{
		ID:          extractRecordID(data["id"]),
		Name:        getString(data, "name"),
		Type:        model.PartyType(getString(data, "type")),
		Description: getString(data, "description"),
		PartyIDs:    getStringSlice(data, "party_ids"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
}
