package handler

import (
	"net/http"
	"testing"
)

func TestUpsertProfileCreatesThenUpdates(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()

	w, c := postJSON(t, "/api/admin/profile", map[string]any{
		"name":     "Mutuku Moses",
		"bio":      "Advocate.",
		"location": "Nairobi",
	})
	c.Set(contextIdentityKey, "admin_test")

	api.UpsertProfile(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	profile, err := api.profiles.GetByExternalID("admin_test")
	if err != nil {
		t.Fatalf("expected profile to exist: %v", err)
	}
	if profile.Location != "Nairobi" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	w2, c2 := postJSON(t, "/api/admin/profile", map[string]any{
		"name":     "Mutuku Moses",
		"bio":      "Advocate.",
		"location": "Mombasa",
	})
	c2.Set(contextIdentityKey, "admin_test")

	api.UpsertProfile(c2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w2.Code)
	}

	updated, err := api.profiles.GetByExternalID("admin_test")
	if err != nil {
		t.Fatalf("expected profile to exist: %v", err)
	}
	if updated.ID != profile.ID || updated.Location != "Mombasa" {
		t.Fatalf("expected in-place update, got %+v", updated)
	}
}

func TestUpsertProfileWithoutIdentity(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()

	w, c := postJSON(t, "/api/admin/profile", map[string]any{"name": "x"})

	api.UpsertProfile(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without identity, got %d", w.Code)
	}
}
