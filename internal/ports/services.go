package ports

import (
	"context"

	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

// TaskListService defines the service port for task-list operations performed
// on behalf of a requesting user. Implemented by the application layer;
// called by inbound adapters (handlers).
//
// Returns domain.ErrAccessDenied when the requester lacks the required
// relation to the list, domain.ErrBadInput for invalid arguments or ids that
// do not resolve, and domain.ErrStorageFailure otherwise.
type TaskListService interface {
	// CreateTaskList creates a list owned by userID. Any client-supplied ID,
	// OwnerID and CreationDate are overwritten.
	CreateTaskList(ctx context.Context, userID string, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// GetTaskList returns a list the requester owns or is attached to.
	GetTaskList(ctx context.Context, userID, taskListID string) (*tasklist.TaskList, error)

	// GetUsersForTaskList returns the users attached to a list the requester
	// owns or is attached to.
	GetUsersForTaskList(ctx context.Context, userID, taskListID string) ([]user.Summary, error)

	// UpdateTaskList updates a list the requester owns or is attached to.
	UpdateTaskList(ctx context.Context, userID string, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// AttachUser shares a list the requester owns or is attached to.
	AttachUser(ctx context.Context, userID, attachedUserID, taskListID string) error

	// DetachUser unshares a list the requester owns or is attached to.
	DetachUser(ctx context.Context, userID, attachedUserID, taskListID string) error

	// DeleteTaskList deletes a list. Only the owner may delete.
	DeleteTaskList(ctx context.Context, userID, taskListID string) error

	// ListUserTaskLists returns one page of the lists visible to userID.
	ListUserTaskLists(ctx context.Context, userID string, page, pageSize int, ascending bool) ([]tasklist.Summary, error)
}
