package state

import (
	"fmt"
	"sync"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/storage"
)

// State owns the three in-memory entity collections and is their single
// source of truth. The persisted snapshot is derived from the maps, never
// the reverse, except once at construction time.
//
// Callers must hold the lock across a mutation and the Persist call that
// follows it, so that "mutate + persist" is one atomic unit.
type State struct {
	mu    sync.Mutex
	store storage.Store

	Projects      *Collection[models.Project]
	Items         *Collection[models.Item]
	Notifications *Collection[models.Notification]
}

// New loads the last persisted snapshot and indexes it by entity ID.
// A snapshot that cannot be decoded is fatal.
func New(store storage.Store) (*State, error) {
	snapshot, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	s := &State{
		store:         store,
		Projects:      NewCollection[models.Project](),
		Items:         NewCollection[models.Item](),
		Notifications: NewCollection[models.Notification](),
	}
	for _, project := range snapshot.Projects {
		s.Projects.Put(project.ID, project)
	}
	for _, item := range snapshot.Items {
		s.Items.Put(item.ID, item)
	}
	for _, notification := range snapshot.Notifications {
		s.Notifications.Put(notification.ID, notification)
	}
	return s, nil
}

func (s *State) Lock() {
	s.mu.Lock()
}

func (s *State) Unlock() {
	s.mu.Unlock()
}

// Persist writes the entire current state through the storage backend.
// The caller must hold the lock. A failed save is not retried and the
// in-memory mutation is left in place; the operation is simply reported
// as not durably committed.
func (s *State) Persist() error {
	snapshot := models.Snapshot{
		Projects:      s.Projects.Values(),
		Items:         s.Items.Values(),
		Notifications: s.Notifications.Values(),
	}
	return s.store.Save(snapshot)
}

// StoreName reports which storage implementation is active.
func (s *State) StoreName() string {
	return s.store.Name()
}
