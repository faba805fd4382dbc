package views

import (
	"fmt"
	"time"

	"todo-manager/backend/internal/state"
)

// Progress counts completed vs total items for one project within one week.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// WeeklyProgress buckets items by ISO calendar week and project. Items use
// their due date when present; undated items fall into the current week at
// call time, so they shift bucket as weeks pass. Nested maps are created
// lazily.
func WeeklyProgress(st *state.State, projectID string) map[string]map[string]*Progress {
	st.Lock()
	defer st.Unlock()

	summary := map[string]map[string]*Progress{}
	for _, item := range st.Items.Values() {
		if projectID != "" && item.ProjectID != projectID {
			continue
		}

		when := time.Now()
		if item.DueDate != nil {
			when = item.DueDate.Time
		}
		year, week := when.ISOWeek()
		label := fmt.Sprintf("%d-W%02d", year, week)

		byProject, ok := summary[label]
		if !ok {
			byProject = map[string]*Progress{}
			summary[label] = byProject
		}
		counts, ok := byProject[item.ProjectID]
		if !ok {
			counts = &Progress{}
			byProject[item.ProjectID] = counts
		}

		counts.Total++
		if item.Completed {
			counts.Completed++
		}
	}
	return summary
}
