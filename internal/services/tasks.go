package services

import (
	"fmt"

	"github.com/gofrs/uuid"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/state"
)

// TaskService manages to-do items. It does not re-validate that the owning
// project exists; the routing layer checks that before calling Create.
type TaskService struct {
	state *state.State
}

func NewTaskService(s *state.State) *TaskService {
	return &TaskService{state: s}
}

// ItemPatch carries a partial update. Nil fields are left unchanged.
type ItemPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     *models.DateOnly `json:"due_date"`
	Tags        *[]string        `json:"tags"`
}

func (s *TaskService) Create(projectID, title string, description *string, dueDate *models.DateOnly, tags []string) (models.Item, error) {
	if tags == nil {
		tags = []string{}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to generate item ID: %w", err)
	}

	item := models.Item{
		ID:          id.String(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Completed:   false,
		Tags:        tags,
	}

	s.state.Lock()
	defer s.state.Unlock()

	s.state.Items.Put(item.ID, item)
	if err := s.state.Persist(); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// ToggleComplete flips the completion flag, or sets it when completed is
// non-nil.
func (s *TaskService) ToggleComplete(id string, completed *bool) (models.Item, error) {
	s.state.Lock()
	defer s.state.Unlock()

	item, ok := s.state.Items.Get(id)
	if !ok {
		return models.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}

	if completed == nil {
		item.Completed = !item.Completed
	} else {
		item.Completed = *completed
	}

	s.state.Items.Put(id, item)
	if err := s.state.Persist(); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (s *TaskService) Update(id string, patch ItemPatch) (models.Item, error) {
	s.state.Lock()
	defer s.state.Unlock()

	item, ok := s.state.Items.Get(id)
	if !ok {
		return models.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}
	if patch.DueDate != nil {
		item.DueDate = patch.DueDate
	}
	if patch.Tags != nil {
		item.Tags = *patch.Tags
	}

	s.state.Items.Put(id, item)
	if err := s.state.Persist(); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// Delete removes the item and cascades to every notification referencing it.
// Deleting an absent item is a no-op, not an error. Both removals are
// persisted in a single snapshot write.
func (s *TaskService) Delete(id string) error {
	s.state.Lock()
	defer s.state.Unlock()

	s.state.Items.Delete(id)

	var orphaned []string
	for _, notification := range s.state.Notifications.Values() {
		if notification.ItemID == id {
			orphaned = append(orphaned, notification.ID)
		}
	}
	for _, notificationID := range orphaned {
		s.state.Notifications.Delete(notificationID)
	}

	return s.state.Persist()
}

// List returns items in insertion order, optionally filtered to one project.
func (s *TaskService) List(projectID string) []models.Item {
	s.state.Lock()
	defer s.state.Unlock()

	items := s.state.Items.Values()
	if projectID == "" {
		return items
	}

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.ProjectID == projectID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *TaskService) Exists(id string) bool {
	s.state.Lock()
	defer s.state.Unlock()

	_, ok := s.state.Items.Get(id)
	return ok
}
