package models

// CalendarEvent is the read-only calendar projection of a due-dated item.
type CalendarEvent struct {
	Date         DateOnly `json:"date"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	ProjectEmoji string   `json:"project_emoji"`
	ProjectName  string   `json:"project_name"`
	Completed    bool     `json:"completed"`
}
