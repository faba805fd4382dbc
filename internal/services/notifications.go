package services

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/state"
)

// NotificationService schedules notifications for items. The routing layer
// verifies the referenced item exists before calling Schedule.
type NotificationService struct {
	state *state.State
}

func NewNotificationService(s *state.State) *NotificationService {
	return &NotificationService{state: s}
}

func (s *NotificationService) Schedule(itemID string, scheduledFor time.Time, message string) (models.Notification, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return models.Notification{}, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	notification := models.Notification{
		ID:           id.String(),
		ItemID:       itemID,
		ScheduledFor: scheduledFor,
		Message:      message,
	}

	s.state.Lock()
	defer s.state.Unlock()

	s.state.Notifications.Put(notification.ID, notification)
	if err := s.state.Persist(); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// Upcoming returns notifications scheduled in [now, before], both bounds
// inclusive. A nil before means no upper bound. Results keep insertion
// order; they are not sorted by time.
func (s *NotificationService) Upcoming(before *time.Time) []models.Notification {
	s.state.Lock()
	defer s.state.Unlock()

	now := time.Now()
	upcoming := []models.Notification{}
	for _, notification := range s.state.Notifications.Values() {
		if notification.ScheduledFor.Before(now) {
			continue
		}
		if before != nil && notification.ScheduledFor.After(*before) {
			continue
		}
		upcoming = append(upcoming, notification)
	}
	return upcoming
}

// Due returns notifications whose scheduled time has been reached at the
// given instant. Used by the background dispatcher.
func (s *NotificationService) Due(at time.Time) []models.Notification {
	s.state.Lock()
	defer s.state.Unlock()

	due := []models.Notification{}
	for _, notification := range s.state.Notifications.Values() {
		if !notification.ScheduledFor.After(at) {
			due = append(due, notification)
		}
	}
	return due
}
