package models

// Item is a single to-do entry belonging to a project.
type Item struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *DateOnly `json:"due_date"`
	Completed   bool      `json:"completed"`
	Tags        []string  `json:"tags"`
}
