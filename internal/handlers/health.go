package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-manager/backend/internal/state"
	"todo-manager/backend/internal/views"
)

type HealthHandler struct {
	state *state.State
}

func NewHealthHandler(st *state.State) *HealthHandler {
	return &HealthHandler{state: st}
}

// Healthcheck reports entity counts, derived-view sizes, and which storage
// implementation is active. Purely informational.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	calendarReady := len(views.Calendar(h.state, ""))
	progressMaps := len(views.WeeklyProgress(h.state, ""))

	h.state.Lock()
	defer h.state.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"storage":        h.state.StoreName(),
		"projects":       h.state.Projects.Len(),
		"tasks":          h.state.Items.Len(),
		"notifications":  h.state.Notifications.Len(),
		"calendar_ready": calendarReady,
		"progress_maps":  progressMaps,
	})
}
