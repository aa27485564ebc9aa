package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// MemberRepository handles roster member data access
type MemberRepository struct {
	db database.Database
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db database.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member. Ids are allocated from a counter record
// starting at 1 so the empty-slot sentinel 0 can never refer to a real
// member.
func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	query := `
		BEGIN TRANSACTION;
		LET $seq = (UPSERT ONLY counter:member SET value = (value ?? 0) + 1).value;
		CREATE type::thing('member', $seq) CONTENT {
			name: $name,
			class: $class,
			created_on: time::now(),
			updated_on: time::now()
		};
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"name":  member.Name,
		"class": member.Class,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: member name already exists", database.ErrDuplicate)
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
		created := parseMemberFromData(data)
		member.ID = created.ID
		member.CreatedOn = created.CreatedOn
		member.UpdatedOn = created.UpdatedOn
		return nil
	}

	return fmt.Errorf("%w: create returned no record", database.ErrQuery)
}

// GetByID retrieves a member by ID. Returns nil when the member does
// not exist.
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	query := `SELECT * FROM type::thing('member', $id)`
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
		return nil, fmt.Errorf("%w: unexpected member result format", database.ErrQuery)
	}

	member := parseMemberFromData(data)
	return &member, nil
}

// List retrieves the whole roster in creation order
func (r *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	query := `SELECT * FROM member ORDER BY created_on ASC`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0)
	for _, item := range extractQueryResults(results) {
		if data, ok := item.(map[string]interface{}); ok {
			members = append(members, parseMemberFromData(data))
		}
	}
	return members, nil
}

// Update updates a member's name and class
func (r *MemberRepository) Update(ctx context.Context, member *model.Member) error {
	query := `
		UPDATE type::thing('member', $id) SET
			name = $name,
			class = $class,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":    member.ID,
		"name":  member.Name,
		"class": member.Class,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a member from the roster
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE type::thing('member', $id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// parseMemberFromData maps a member record onto the model
func parseMemberFromData(data map[string]interface{}) model.Member {
	return model.Member{
		ID:        recordIDNumber(data["id"]),
		Name:      getString(data, "name"),
		Class:     getString(data, "class"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}
