package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo-manager/backend/internal/models"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	return store
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := newTestFileStore(t)

	snapshot, err := store.Load()
	if err != nil {
		t.Fatalf("Missing file must not be an error, got: %v", err)
	}
	if len(snapshot.Projects) != 0 || len(snapshot.Items) != 0 || len(snapshot.Notifications) != 0 {
		t.Errorf("Expected empty snapshot, got %+v", snapshot)
	}
	if snapshot.Projects == nil {
		t.Error("Expected non-nil projects slice")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)

	description := "write the report"
	due := models.NewDateOnly(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	snapshot := models.Snapshot{
		Projects: []models.Project{
			{ID: "p1", Name: "Work", Emoji: "💼", Description: &description},
		},
		Items: []models.Item{
			{ID: "i1", ProjectID: "p1", Title: "Report", DueDate: &due, Completed: true, Tags: []string{"urgent"}},
			{ID: "i2", ProjectID: "p1", Title: "No due date", Tags: []string{}},
		},
		Notifications: []models.Notification{
			{ID: "n1", ItemID: "i1", ScheduledFor: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Message: "due soon"},
		},
	}

	if err := store.Save(snapshot); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if len(loaded.Projects) != 1 || len(loaded.Items) != 2 || len(loaded.Notifications) != 1 {
		t.Fatalf("Unexpected counts: %+v", loaded)
	}
	if loaded.Projects[0].Emoji != "💼" {
		t.Errorf("Expected emoji 💼, got %s", loaded.Projects[0].Emoji)
	}
	if loaded.Projects[0].Description == nil || *loaded.Projects[0].Description != description {
		t.Errorf("Description not preserved: %+v", loaded.Projects[0])
	}
	if loaded.Items[0].DueDate == nil || loaded.Items[0].DueDate.String() != "2024-03-05" {
		t.Errorf("Due date not preserved: %+v", loaded.Items[0])
	}
	if loaded.Items[1].DueDate != nil {
		t.Errorf("Absent due date must stay absent, got %v", loaded.Items[1].DueDate)
	}
	if !loaded.Notifications[0].ScheduledFor.Equal(snapshot.Notifications[0].ScheduledFor) {
		t.Errorf("Scheduled time not preserved: %v", loaded.Notifications[0].ScheduledFor)
	}
}

func TestFileStoreWritesLiteralNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	snapshot := models.EmptySnapshot()
	snapshot.Projects = append(snapshot.Projects, models.Project{ID: "p1", Name: "Haushalt", Emoji: "🧹"})

	if err := store.Save(snapshot); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if !strings.Contains(string(raw), "🧹") {
		t.Errorf("Emoji must be written literally, got: %s", raw)
	}
	if !strings.Contains(string(raw), "\n  ") {
		t.Error("Expected indented output")
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := newTestFileStore(t)

	first := models.EmptySnapshot()
	first.Projects = append(first.Projects, models.Project{ID: "p1", Name: "One", Emoji: "📁"})
	if err := store.Save(first); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	second := models.EmptySnapshot()
	second.Projects = append(second.Projects, models.Project{ID: "p2", Name: "Two", Emoji: "📁"})
	if err := store.Save(second); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if len(loaded.Projects) != 1 || loaded.Projects[0].ID != "p2" {
		t.Errorf("Expected only the second snapshot, got %+v", loaded.Projects)
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	_, err = store.Load()
	if err == nil {
		t.Fatal("Expected decode error for corrupt snapshot")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}
