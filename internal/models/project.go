package models

// DefaultEmoji is assigned to projects created without an explicit icon.
const DefaultEmoji = "📁"

type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	Description *string `json:"description"`
}
