package service

import (
	"errors"
	"testing"
)

func TestGalleryCreateRequiresImageAndTitle(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)

	if _, err := svc.Create(GalleryInput{Title: "No image"}); !errors.Is(err, ErrGalleryImageMissing) {
		t.Fatalf("expected missing image error, got %v", err)
	}
	if _, err := svc.Create(GalleryInput{ImageURL: "https://example.com/a.jpg"}); !errors.Is(err, ErrGalleryImageMissing) {
		t.Fatalf("expected missing title error, got %v", err)
	}

	item, err := svc.Create(GalleryInput{
		Title:       "Office",
		ImageURL:    "https://example.com/office.jpg",
		ImageWidth:  1200,
		ImageHeight: 800,
	})
	if err != nil {
		t.Fatalf("failed to create gallery image: %v", err)
	}
	if item.ImageWidth != 1200 || item.ImageHeight != 800 {
		t.Fatalf("dimensions not stored: %+v", item)
	}
}

func TestGalleryListOrdering(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)

	if _, err := svc.Create(GalleryInput{Title: "Second", ImageURL: "https://example.com/2.jpg", SortOrder: 5}); err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	if _, err := svc.Create(GalleryInput{Title: "First", ImageURL: "https://example.com/1.jpg", SortOrder: 0}); err != nil {
		t.Fatalf("failed to create image: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("failed to list images: %v", err)
	}
	if len(items) != 2 || items[0].Title != "First" {
		t.Fatalf("expected ascending display order, got %+v", items)
	}
}

func TestGalleryUpdateAndDelete(t *testing.T) {
	gdb, cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewGalleryService(gdb)

	item, err := svc.Create(GalleryInput{Title: "Old", ImageURL: "https://example.com/a.jpg"})
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}

	updated, err := svc.Update(item.ID, GalleryInput{Title: "New", ImageURL: "https://example.com/b.jpg", SortOrder: 3})
	if err != nil {
		t.Fatalf("failed to update image: %v", err)
	}
	if updated.Title != "New" || updated.SortOrder != 3 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(item.ID); !errors.Is(err, ErrGalleryNotFound) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}
