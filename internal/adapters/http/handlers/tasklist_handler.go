// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// TaskListHandler handles HTTP requests for task lists and their attached
// users. The requesting user is always taken from the userId query parameter.
type TaskListHandler struct {
	svc ports.TaskListService
}

// NewTaskListHandler creates a new TaskListHandler with the given service port.
func NewTaskListHandler(svc ports.TaskListService) *TaskListHandler {
	return &TaskListHandler{svc: svc}
}

// ListUserTaskLists handles GET /api/v1/user/taskLists.
func (h *TaskListHandler) ListUserTaskLists(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseListTaskListsQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.svc.ListUserTaskLists(r.Context(), q.UserID, q.Page, q.PageSize, q.Ascending)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListSummaries(items))
}

// GetTaskListUsers handles GET /api/v1/taskList/users.
func (h *TaskListHandler) GetTaskListUsers(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseTaskListQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	users, err := h.svc.GetUsersForTaskList(r.Context(), q.UserID, q.TaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserSummaries(users))
}

// GetTaskList handles GET /api/v1/taskList.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseTaskListQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.GetTaskList(r.Context(), q.UserID, q.TaskListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(l))
}

// CreateTaskList handles POST /api/v1/taskList.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseUserQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateTaskList(r.Context(), q.UserID, mapCreateRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(created))
}

// UpdateTaskList handles PUT /api/v1/taskList.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseUserQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTaskList(r.Context(), q.UserID, mapUpdateRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(updated))
}

// AttachUser handles PUT /api/v1/taskList/attach.
func (h *TaskListHandler) AttachUser(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseMembershipQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.AttachUser(r.Context(), q.UserID, q.AttachedUserID, q.TaskListID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DetachUser handles PUT /api/v1/taskList/detach.
func (h *TaskListHandler) DetachUser(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseMembershipQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DetachUser(r.Context(), q.UserID, q.AttachedUserID, q.TaskListID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteTaskList handles DELETE /api/v1/taskList.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseDeleteTaskListQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTaskList(r.Context(), q.UserID, q.TaskListID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
