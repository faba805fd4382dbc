package models

import "time"

type Notification struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Message      string    `json:"message"`
}
