package service

import (
	"errors"
	"testing"
)

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProfileService(gdb)

	created, err := svc.Upsert("clerk_abc123", ProfileInput{
		Name:     "Mutuku Moses",
		Bio:      "Advocate of the High Court.",
		Phone:    "+254 700 123 456",
		Location: "Nairobi",
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a persisted id")
	}

	updated, err := svc.Upsert("clerk_abc123", ProfileInput{
		Name:     "Mutuku Moses",
		Bio:      "Updated bio.",
		Location: "Mombasa",
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected the same row to be updated, got id %d vs %d", updated.ID, created.ID)
	}
	if updated.Bio != "Updated bio." || updated.Location != "Mombasa" {
		t.Fatalf("update not applied: %+v", updated)
	}

	fetched, err := svc.GetByExternalID("clerk_abc123")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Bio != "Updated bio." {
		t.Fatalf("stored bio mismatch: %q", fetched.Bio)
	}
}

func TestProfileUpsertIsPerIdentity(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProfileService(gdb)

	first, err := svc.Upsert("admin_one", ProfileInput{Name: "One"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	second, err := svc.Upsert("admin_two", ProfileInput{Name: "Two"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct rows per identity")
	}
}

func TestProfileIdentityRequired(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewProfileService(gdb)

	if _, err := svc.Upsert("  ", ProfileInput{Name: "x"}); !errors.Is(err, ErrProfileIdentityMissing) {
		t.Fatalf("expected identity error, got %v", err)
	}
	if _, err := svc.GetByExternalID(""); !errors.Is(err, ErrProfileIdentityMissing) {
		t.Fatalf("expected identity error, got %v", err)
	}
	if _, err := svc.GetByExternalID("unknown"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected not-found for unknown identity, got %v", err)
	}
}
