package views

import (
	"sort"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/state"
)

// Calendar derives calendar events from every due-dated item, optionally
// filtered to one project, joined against the owning project for display
// fields. Events are sorted ascending by date; same-date events keep their
// original relative order. Nothing is mutated or cached.
func Calendar(st *state.State, projectID string) []models.CalendarEvent {
	st.Lock()
	defer st.Unlock()

	events := []models.CalendarEvent{}
	for _, item := range st.Items.Values() {
		if projectID != "" && item.ProjectID != projectID {
			continue
		}
		if item.DueDate == nil {
			continue
		}

		project, _ := st.Projects.Get(item.ProjectID)
		events = append(events, models.CalendarEvent{
			Date:         *item.DueDate,
			Title:        item.Title,
			Description:  item.Description,
			ProjectEmoji: project.Emoji,
			ProjectName:  project.Name,
			Completed:    item.Completed,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Time.Before(events[j].Date.Time)
	})
	return events
}
