package storage

import (
	"errors"

	"todo-manager/backend/internal/models"
)

// ErrDecode marks a snapshot that could not be deserialized. It is fatal at
// startup: the state container refuses to initialize from corrupt data.
var ErrDecode = errors.New("malformed snapshot")

// Store is the persistence contract for the full application snapshot.
// Load returns an empty snapshot when nothing has been persisted yet;
// absence is an expected state, never an error. Save overwrites the previous
// snapshot entirely; failures are returned as-is and never retried.
type Store interface {
	Load() (models.Snapshot, error)
	Save(models.Snapshot) error
	Name() string
}
