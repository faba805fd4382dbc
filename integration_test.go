package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"todo-manager/backend/internal/config"
	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/services"
	"todo-manager/backend/internal/state"
	"todo-manager/backend/internal/storage"
	"todo-manager/backend/internal/views"
)

func TestApplicationStartup(t *testing.T) {
	os.Setenv("ENVIRONMENT", "development")
	os.Setenv("STORAGE_BACKEND", "file")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("STORAGE_BACKEND")
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg == nil {
		t.Fatal("Configuration should not be nil")
	}
}

func TestFullLifecycleOverFileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	store, err := storage.NewFileStore(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	st, err := state.New(store)
	if err != nil {
		t.Fatalf("Failed to create state: %v", err)
	}

	projects := services.NewProjectService(st)
	tasks := services.NewTaskService(st)
	notifications := services.NewNotificationService(st)

	project, err := projects.Create("Renovation", "🔨", nil)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	dueStr := "2024-01-08"
	due, err := models.ParseDateOnly(dueStr)
	if err != nil {
		t.Fatalf("Failed to parse date: %v", err)
	}
	item, err := tasks.Create(project.ID, "Paint walls", nil, &due, []string{"diy"})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if _, err := tasks.ToggleComplete(item.ID, nil); err != nil {
		t.Fatalf("Failed to toggle: %v", err)
	}
	if _, err := notifications.Schedule(item.ID, time.Now().Add(time.Hour), "buy paint"); err != nil {
		t.Fatalf("Failed to schedule: %v", err)
	}

	events := views.Calendar(st, "")
	if len(events) != 1 || !events[0].Completed {
		t.Errorf("Unexpected calendar events: %+v", events)
	}
	progress := views.WeeklyProgress(st, "")
	if counts := progress["2024-W02"][project.ID]; counts == nil || counts.Completed != 1 || counts.Total != 1 {
		t.Errorf("Unexpected progress: %+v", progress)
	}

	// A fresh stack over the same file must see the same world.
	store2, err := storage.NewFileStore(path)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	st2, err := state.New(store2)
	if err != nil {
		t.Fatalf("Failed to reload state: %v", err)
	}
	if st2.Projects.Len() != 1 || st2.Items.Len() != 1 || st2.Notifications.Len() != 1 {
		t.Errorf("Reloaded counts wrong: %d/%d/%d",
			st2.Projects.Len(), st2.Items.Len(), st2.Notifications.Len())
	}

	reloaded, ok := st2.Items.Get(item.ID)
	if !ok {
		t.Fatal("Item missing after reload")
	}
	if !reloaded.Completed || reloaded.DueDate == nil || reloaded.DueDate.String() != dueStr {
		t.Errorf("Item not faithfully persisted: %+v", reloaded)
	}
}
