package history

import (
	"context"
	"sync"
	"testing"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// resetStore resets the singleton so each test gets a fresh DB.
func resetStore(t *testing.T, limit int) {
	t.Helper()
	engine.Init(engine.Config{DataDir: t.TempDir(), HistoryLimit: limit})
	storeDB = nil
	storeErr = nil
	storeOnce = sync.Once{}
}

func TestAppendAndList(t *testing.T) {
	resetStore(t, 0)
	ctx := context.Background()

	if err := Append(ctx, "linkedin", "(Developer) AND (Go)", 85); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := Append(ctx, "google", "site:linkedin.com/in Developer", 72); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	entries, err := List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].PlatformID != "google" || entries[0].Score != 72 {
		t.Errorf("newest entry = %+v", entries[0])
	}
	if entries[1].Query != "(Developer) AND (Go)" {
		t.Errorf("oldest query = %q", entries[1].Query)
	}
}

func TestAppend_PrunesToLimit(t *testing.T) {
	resetStore(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := Append(ctx, "linkedin", "query", i); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	entries, err := List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want limit 3", len(entries))
	}
	// The three newest survive.
	if entries[0].Score != 4 || entries[2].Score != 2 {
		t.Errorf("pruned wrong rows: %+v", entries)
	}
}

func TestList_Empty(t *testing.T) {
	resetStore(t, 0)

	entries, err := List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want empty non-nil slice", entries)
	}
}

func TestPresets_RoundTrip(t *testing.T) {
	resetStore(t, 0)
	ctx := context.Background()

	payload := engine.QueryPayload{
		SearchType: engine.SearchPeople,
		Titles:     []string{"Developer"},
		Skills:     []string{"Go"},
		Filters:    map[string]string{"connections": "second"},
	}
	saved, err := SavePreset(ctx, "go devs", "salesnav", payload)
	if err != nil {
		t.Fatalf("SavePreset error: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected generated preset id")
	}

	presets, err := ListPresets(ctx)
	if err != nil {
		t.Fatalf("ListPresets error: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("presets = %d, want 1", len(presets))
	}
	got := presets[0]
	if got.Name != "go devs" || got.PlatformID != "salesnav" {
		t.Errorf("preset = %+v", got)
	}
	if len(got.Payload.Titles) != 1 || got.Payload.Filters["connections"] != "second" {
		t.Errorf("payload did not round-trip: %+v", got.Payload)
	}
}

func TestSavePreset_RequiresName(t *testing.T) {
	resetStore(t, 0)
	if _, err := SavePreset(context.Background(), "", "linkedin", engine.QueryPayload{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestDeletePreset(t *testing.T) {
	resetStore(t, 0)
	ctx := context.Background()

	saved, err := SavePreset(ctx, "temp", "linkedin", engine.QueryPayload{})
	if err != nil {
		t.Fatalf("SavePreset error: %v", err)
	}
	if err := DeletePreset(ctx, saved.ID); err != nil {
		t.Fatalf("DeletePreset error: %v", err)
	}
	if err := DeletePreset(ctx, saved.ID); err == nil {
		t.Error("deleting twice should error")
	}

	presets, _ := ListPresets(ctx)
	if len(presets) != 0 {
		t.Errorf("presets = %d after delete, want 0", len(presets))
	}
}
