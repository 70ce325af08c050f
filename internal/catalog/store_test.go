package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"filmvault/internal/catalog"
	"filmvault/internal/config"
	"filmvault/internal/tmdb"
)

func newStore(t *testing.T) *catalog.Store {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.DataDir = dir
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	store, err := catalog.Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCollectionLifecycle(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	collection, err := store.CreateCollection(ctx, "Living Room Shelf")
	if err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	if collection.ID == "" || collection.Name != "Living Room Shelf" {
		t.Fatalf("unexpected collection: %+v", collection)
	}

	found, err := store.FindCollectionByName(ctx, "Living Room Shelf")
	if err != nil {
		t.Fatalf("FindCollectionByName: %v", err)
	}
	if found == nil || found.ID != collection.ID {
		t.Fatalf("lookup mismatch: %+v", found)
	}

	all, err := store.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(all))
	}

	if err := store.DeleteCollection(ctx, collection.ID); err != nil {
		t.Fatalf("DeleteCollection: %v", err)
	}
	if found, err = store.GetCollection(ctx, collection.ID); err != nil || found != nil {
		t.Fatalf("expected collection gone, got %+v err %v", found, err)
	}
}

func TestCreateCollectionRejectsBlankName(t *testing.T) {
	store := newStore(t)
	if _, err := store.CreateCollection(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank collection name")
	}
}

func TestItemLifecycle(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	collection, err := store.CreateCollection(ctx, "Movies")
	if err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}

	result := tmdb.Result{ID: 155, Title: "The Dark Knight", MediaType: "movie", ReleaseDate: "2008-07-18"}
	stored, err := store.AddItem(ctx, catalog.NewItem(collection.ID, result, []string{"Blu-ray", "4K"}))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if stored.Title != "The Dark Knight" || stored.Year != "2008" || stored.TMDBID != 155 {
		t.Fatalf("unexpected stored item: %+v", stored)
	}
	if len(stored.Formats) != 2 || stored.Formats[0] != "Blu-ray" {
		t.Fatalf("formats not persisted: %+v", stored.Formats)
	}
	if stored.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", stored.Quantity)
	}
	if stored.AddedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", stored)
	}

	if err := store.SetWatched(ctx, stored.ID, true); err != nil {
		t.Fatalf("SetWatched: %v", err)
	}
	if err := store.SetRating(ctx, stored.ID, 9); err != nil {
		t.Fatalf("SetRating: %v", err)
	}
	reread, err := store.GetItem(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if !reread.Watched || reread.Rating != 9 {
		t.Fatalf("flags not persisted: %+v", reread)
	}

	reread.Title = "The Dark Knight (IMAX)"
	reread.Quantity = 2
	if err := store.UpdateItem(ctx, reread); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	updated, err := store.GetItem(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetItem after update: %v", err)
	}
	if updated.Title != "The Dark Knight (IMAX)" || updated.Quantity != 2 {
		t.Fatalf("update not persisted: %+v", updated)
	}

	items, err := store.ListItems(ctx, collection.ID)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if err := store.DeleteItem(ctx, stored.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if gone, err := store.GetItem(ctx, stored.ID); err != nil || gone != nil {
		t.Fatalf("expected item gone, got %+v err %v", gone, err)
	}
}

func TestSetRatingRejectsOutOfRange(t *testing.T) {
	store := newStore(t)
	if err := store.SetRating(context.Background(), "whatever", 11); err == nil {
		t.Fatal("expected error for rating above 10")
	}
}

func TestDeleteCollectionCascadesToItems(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	collection, err := store.CreateCollection(ctx, "To Prune")
	if err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	item, err := store.AddItem(ctx, catalog.NewItem(collection.ID, tmdb.Result{ID: 1, Title: "Gone", MediaType: "movie"}, nil))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := store.DeleteCollection(ctx, collection.ID); err != nil {
		t.Fatalf("DeleteCollection: %v", err)
	}
	if orphan, err := store.GetItem(ctx, item.ID); err != nil || orphan != nil {
		t.Fatalf("expected cascade delete, got %+v err %v", orphan, err)
	}
}

func TestNewItemDefaultsFormat(t *testing.T) {
	item := catalog.NewItem("c1", tmdb.Result{ID: 2, Name: "Severance", MediaType: "tv", FirstAirDate: "2022-02-18"}, nil)
	if len(item.Formats) != 1 || item.Formats[0] != "DVD" {
		t.Fatalf("expected DVD default, got %+v", item.Formats)
	}
	if item.Title != "Severance" || item.Year != "2022" {
		t.Fatalf("tv mapping wrong: %+v", item)
	}
}
