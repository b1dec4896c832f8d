// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

// TaskListResponse represents a full task list in HTTP responses.
type TaskListResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	OwnerID       string   `json:"ownerId"`
	CreationDate  string   `json:"creationDate"`
	Tasks         []string `json:"tasks"`
	AttachedUsers []string `json:"attachedUsers"`
}

// ToTaskListResponse converts a domain TaskList to an HTTP response DTO.
// Arrays are always rendered, never null.
func ToTaskListResponse(l *tasklist.TaskList) TaskListResponse {
	resp := TaskListResponse{
		ID:            l.ID,
		Name:          l.Name,
		OwnerID:       l.OwnerID,
		CreationDate:  l.CreationDate.UTC().Format(time.RFC3339Nano),
		Tasks:         l.Tasks,
		AttachedUsers: l.AttachedUsers,
	}
	if resp.Tasks == nil {
		resp.Tasks = []string{}
	}
	if resp.AttachedUsers == nil {
		resp.AttachedUsers = []string{}
	}
	return resp
}

// TaskListSummaryResponse is the projected list view.
type TaskListSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToTaskListSummaries converts task list summaries to response DTOs.
func ToTaskListSummaries(items []tasklist.Summary) []TaskListSummaryResponse {
	out := make([]TaskListSummaryResponse, len(items))
	for i, s := range items {
		out[i] = TaskListSummaryResponse{ID: s.ID, Name: s.Name}
	}
	return out
}

// UserSummaryResponse is the projected view of a user attached to a list.
type UserSummaryResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ToUserSummaries converts user summaries to response DTOs.
func ToUserSummaries(items []user.Summary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, len(items))
	for i, s := range items {
		out[i] = UserSummaryResponse{ID: s.ID, Username: s.Username}
	}
	return out
}
