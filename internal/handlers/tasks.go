package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-manager/backend/internal/models"
	"todo-manager/backend/internal/services"
)

type TaskHandler struct {
	tasks    *services.TaskService
	projects *services.ProjectService
}

func NewTaskHandler(tasks *services.TaskService, projects *services.ProjectService) *TaskHandler {
	return &TaskHandler{tasks: tasks, projects: projects}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.tasks.List(c.Query("project_id")))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input struct {
		ProjectID   string           `json:"project_id" binding:"required"`
		Title       string           `json:"title" binding:"required"`
		Description *string          `json:"description"`
		DueDate     *models.DateOnly `json:"due_date"`
		Tags        []string         `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The task service itself does not re-validate project references.
	if !h.projects.Exists(input.ProjectID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	item, err := h.tasks.Create(input.ProjectID, input.Title, input.Description, input.DueDate, input.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create task",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		DueDate     *models.DateOnly `json:"due_date"`
		Tags        *[]string        `json:"tags"`
		Completed   *bool            `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.tasks.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if input.Completed != nil {
		if _, err := h.tasks.ToggleComplete(id, input.Completed); err != nil {
			handleTaskError(c, err)
			return
		}
	}

	item, err := h.tasks.Update(id, services.ItemPatch{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	})
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	if !h.tasks.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if err := h.tasks.Delete(id); err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "item_id": id})
}

func handleTaskError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process task request"})
	}
}
