// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	taskListHandler *handlers.TaskListHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes. Every endpoint identifies the caller by the userId
	// query parameter.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/user/taskLists", taskListHandler.ListUserTaskLists)

		r.Get("/taskList", taskListHandler.GetTaskList)
		r.Post("/taskList", taskListHandler.CreateTaskList)
		r.Put("/taskList", taskListHandler.UpdateTaskList)
		r.Delete("/taskList", taskListHandler.DeleteTaskList)

		r.Get("/taskList/users", taskListHandler.GetTaskListUsers)
		r.Put("/taskList/attach", taskListHandler.AttachUser)
		r.Put("/taskList/detach", taskListHandler.DetachUser)
	})

	return r
}
