package models

// Snapshot is the complete application state persisted as a single unit.
// Every mutation rewrites the whole snapshot; there is no incremental diff.
type Snapshot struct {
	Projects      []Project      `json:"projects"`
	Items         []Item         `json:"items"`
	Notifications []Notification `json:"notifications"`
}

// EmptySnapshot returns a snapshot with empty (non-nil) collections so that
// serialization yields empty arrays rather than nulls.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Projects:      []Project{},
		Items:         []Item{},
		Notifications: []Notification{},
	}
}
