package handlers

import (
	"github.com/gin-gonic/gin"

	"todo-manager/backend/internal/services"
	"todo-manager/backend/internal/state"
)

// Register wires every route onto the router.
func Register(router *gin.Engine, st *state.State, projects *services.ProjectService, tasks *services.TaskService, notifications *services.NotificationService) {
	projectHandler := NewProjectHandler(projects)
	taskHandler := NewTaskHandler(tasks, projects)
	notificationHandler := NewNotificationHandler(notifications, tasks)
	viewsHandler := NewViewsHandler(st)
	healthHandler := NewHealthHandler(st)

	router.GET("/projects", projectHandler.ListProjects)
	router.POST("/projects", projectHandler.CreateProject)
	router.PATCH("/projects/:id", projectHandler.UpdateProject)

	router.GET("/tasks", taskHandler.ListTasks)
	router.POST("/tasks", taskHandler.CreateTask)
	router.PATCH("/tasks/:id", taskHandler.UpdateTask)
	router.DELETE("/tasks/:id", taskHandler.DeleteTask)

	router.POST("/notifications", notificationHandler.ScheduleNotification)
	router.GET("/notifications/upcoming", notificationHandler.ListUpcoming)

	router.GET("/views/calendar", viewsHandler.CalendarView)
	router.GET("/views/progress", viewsHandler.WeeklyProgress)

	router.GET("/health", healthHandler.Healthcheck)
}
