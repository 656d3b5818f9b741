package service

import (
	"errors"
	"testing"
)

func TestTeamMemberCRUD(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewTeamMemberService(gdb)

	if _, err := svc.Create(TeamMemberInput{Name: "No Title"}); !errors.Is(err, ErrTeamMemberInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}

	member, err := svc.Create(TeamMemberInput{
		Name:      "Mary Wanjiku",
		Title:     "Senior Associate",
		Bio:       "Litigation.",
		SortOrder: 2,
	})
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}

	fetched, err := svc.Get(member.ID)
	if err != nil {
		t.Fatalf("failed to get member: %v", err)
	}
	if fetched.Name != "Mary Wanjiku" {
		t.Fatalf("unexpected member %+v", fetched)
	}

	updated, err := svc.Update(member.ID, TeamMemberInput{
		Name:  "Mary Wanjiku",
		Title: "Partner",
	})
	if err != nil {
		t.Fatalf("failed to update member: %v", err)
	}
	if updated.Title != "Partner" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(member.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(member.ID); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestTeamMemberListOrdering(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewTeamMemberService(gdb)

	if _, err := svc.Create(TeamMemberInput{Name: "B", Title: "t", SortOrder: 5}); err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	if _, err := svc.Create(TeamMemberInput{Name: "A", Title: "t", SortOrder: 0}); err != nil {
		t.Fatalf("failed to create member: %v", err)
	}

	members, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list members: %v", err)
	}
	if len(members) != 2 || members[0].Name != "A" {
		t.Fatalf("expected ascending display order, got %+v", members)
	}
}
