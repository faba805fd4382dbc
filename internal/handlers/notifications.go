package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-manager/backend/internal/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
	tasks         *services.TaskService
}

func NewNotificationHandler(notifications *services.NotificationService, tasks *services.TaskService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, tasks: tasks}
}

func (h *NotificationHandler) ScheduleNotification(c *gin.Context) {
	var input struct {
		ItemID       string    `json:"item_id" binding:"required"`
		ScheduledFor time.Time `json:"scheduled_for" binding:"required"`
		Message      string    `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The notification service does not re-validate item references.
	if !h.tasks.Exists(input.ItemID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found for notification"})
		return
	}

	notification, err := h.notifications.Schedule(input.ItemID, input.ScheduledFor, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to schedule notification",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// ListUpcoming returns notifications due between now and the "before" query
// parameter. When the parameter is absent the horizon defaults to now, so
// only notifications due this instant are returned.
func (h *NotificationHandler) ListUpcoming(c *gin.Context) {
	horizon := time.Now()
	if raw := c.Query("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid before parameter, expected RFC3339 timestamp"})
			return
		}
		horizon = parsed
	}

	c.JSON(http.StatusOK, h.notifications.Upcoming(&horizon))
}
