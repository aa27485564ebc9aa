package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

type mockRosterPartyRepo struct {
	listByTypeFunc   func(ctx context.Context, partyType model.PartyType) ([]model.Party, error)
	vacateMemberFunc func(ctx context.Context, memberID int64) error
}

func (m *mockRosterPartyRepo) ListByType(ctx context.Context, partyType model.PartyType) ([]model.Party, error) {
	if m.listByTypeFunc != nil {
		return m.listByTypeFunc(ctx, partyType)
	}
	return nil, nil
}

func (m *mockRosterPartyRepo) VacateMember(ctx context.Context, memberID int64) error {
	if m.vacateMemberFunc != nil {
		return m.vacateMemberFunc(ctx, memberID)
	}
	return nil
}

func newMemberService(memberRepo *mockMemberRepo, partyRepo *mockRosterPartyRepo) *MemberService {
	return NewMemberService(MemberServiceConfig{
		MemberRepo: memberRepo,
		PartyRepo:  partyRepo,
		Catalog:    NewClassCatalog(nil),
	})
}

func TestCreateMemberCanonicalizesClass(t *testing.T) {
	var created *model.Member
	repo := &mockMemberRepo{
		createFunc: func(ctx context.Context, member *model.Member) error {
			member.ID = 1
			created = member
			return nil
		},
	}
	svc := newMemberService(repo, &mockRosterPartyRepo{})

	member, err := svc.Create(context.Background(), &model.CreateMemberRequest{
		Name:  "  Arwen  ",
		Class: "swordsman",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected repository create call")
	}
	if member.Name != "Arwen" {
		t.Errorf("expected trimmed name, got %q", member.Name)
	}
	if member.Class != "Swordsman" {
		t.Errorf("expected canonical class casing, got %q", member.Class)
	}
}

func TestCreateMemberUnknownClassRejected(t *testing.T) {
	svc := newMemberService(&mockMemberRepo{}, &mockRosterPartyRepo{})

	_, err := svc.Create(context.Background(), &model.CreateMemberRequest{
		Name:  "Arwen",
		Class: "Necromancer",
	})
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got %v", err)
	}
}

func TestDeleteMemberVacatesSlotsFirst(t *testing.T) {
	var order []string
	memberRepo := &mockMemberRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Member, error) {
			return &model.Member{ID: id, Name: "Arwen", Class: "Mage"}, nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			order = append(order, "delete")
			return nil
		},
	}
	partyRepo := &mockRosterPartyRepo{
		vacateMemberFunc: func(ctx context.Context, memberID int64) error {
			order = append(order, "vacate")
			return nil
		},
	}
	svc := newMemberService(memberRepo, partyRepo)

	if err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "vacate" || order[1] != "delete" {
		t.Errorf("expected vacate before delete, got %v", order)
	}
}

func TestDeleteUnknownMemberRejected(t *testing.T) {
	svc := newMemberService(&mockMemberRepo{}, &mockRosterPartyRepo{})

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestUnassignedIsTypeScoped(t *testing.T) {
	memberRepo := &mockMemberRepo{
		listFunc: func(ctx context.Context) ([]model.Member, error) {
			return []model.Member{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
				{ID: 3, Name: "C"},
			}, nil
		},
	}
	partyRepo := &mockRosterPartyRepo{
		listByTypeFunc: func(ctx context.Context, partyType model.PartyType) ([]model.Party, error) {
			return []model.Party{
				{ID: "party:alpha", Type: partyType, MemberIDs: [model.PartySize]int64{2, 0, 0, 0, 0}},
			}, nil
		},
	}
	svc := newMemberService(memberRepo, partyRepo)

	unassigned, err := svc.Unassigned(context.Background(), model.PartyTypeKVM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unassigned) != 2 {
		t.Fatalf("expected 2 unassigned members, got %d", len(unassigned))
	}
	if unassigned[0].ID != 1 || unassigned[1].ID != 3 {
		t.Errorf("expected roster order preserved, got %v", unassigned)
	}
}

func TestUnassignedInvalidType(t *testing.T) {
	svc := newMemberService(&mockMemberRepo{}, &mockRosterPartyRepo{})

	if _, err := svc.Unassigned(context.Background(), "woe"); !errors.Is(err, ErrInvalidPartyType) {
		t.Errorf("expected ErrInvalidPartyType, got %v", err)
	}
}
