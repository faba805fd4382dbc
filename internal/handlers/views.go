package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-manager/backend/internal/state"
	"todo-manager/backend/internal/views"
)

type ViewsHandler struct {
	state *state.State
}

func NewViewsHandler(st *state.State) *ViewsHandler {
	return &ViewsHandler{state: st}
}

func (h *ViewsHandler) CalendarView(c *gin.Context) {
	c.JSON(http.StatusOK, views.Calendar(h.state, c.Query("project_id")))
}

func (h *ViewsHandler) WeeklyProgress(c *gin.Context) {
	c.JSON(http.StatusOK, views.WeeklyProgress(h.state, c.Query("project_id")))
}
