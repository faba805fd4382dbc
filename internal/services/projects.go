package services

import (
	"fmt"

	"github.com/gofrs/uuid"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/state"
)

// ProjectService handles CRUD operations for projects.
type ProjectService struct {
	state *state.State
}

func NewProjectService(s *state.State) *ProjectService {
	return &ProjectService{state: s}
}

// ProjectPatch carries a partial update. Nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Emoji       *string `json:"emoji"`
	Description *string `json:"description"`
}

// Create inserts a new project. Any name is accepted, including the empty
// string; an empty emoji falls back to the default icon.
func (s *ProjectService) Create(name, emoji string, description *string) (models.Project, error) {
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	id, err := uuid.NewV4()
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to generate project ID: %w", err)
	}

	project := models.Project{
		ID:          id.String(),
		Name:        name,
		Emoji:       emoji,
		Description: description,
	}

	s.state.Lock()
	defer s.state.Unlock()

	s.state.Projects.Put(project.ID, project)
	if err := s.state.Persist(); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) Update(id string, patch ProjectPatch) (models.Project, error) {
	s.state.Lock()
	defer s.state.Unlock()

	project, ok := s.state.Projects.Get(id)
	if !ok {
		return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}

	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Emoji != nil {
		project.Emoji = *patch.Emoji
	}
	if patch.Description != nil {
		project.Description = patch.Description
	}

	s.state.Projects.Put(id, project)
	if err := s.state.Persist(); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// List returns all projects in insertion order.
func (s *ProjectService) List() []models.Project {
	s.state.Lock()
	defer s.state.Unlock()

	return s.state.Projects.Values()
}

// Exists reports whether a project with the given ID is present. Used by
// the routing layer to pre-validate task references.
func (s *ProjectService) Exists(id string) bool {
	s.state.Lock()
	defer s.state.Unlock()

	_, ok := s.state.Projects.Get(id)
	return ok
}
