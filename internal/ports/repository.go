package ports

import (
	"context"

	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

// TaskListRepository defines the storage port for task lists and the user
// side of their membership relation. Implemented by the storage adapters;
// called by the application layer.
//
// Every write keeps TaskList.AttachedUsers and User.AttachedTaskLists in
// agreement and either applies completely or not at all. Errors wrap
// domain.ErrInvalidReference when a referenced id does not resolve and
// domain.ErrStorageFailure for any other store failure.
type TaskListRepository interface {
	// CreateTaskList inserts a new list and links every attached user.
	// The store assigns the ID.
	CreateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// UpdateTaskList replaces the stored list identified by list.ID.
	// OwnerID and CreationDate are kept from the stored list; nil Tasks or
	// AttachedUsers keep the stored values.
	UpdateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error)

	// DeleteTaskList removes the list and unlinks it from every attached user.
	DeleteTaskList(ctx context.Context, id string) error

	// GetTaskList returns the full list.
	GetTaskList(ctx context.Context, id string) (*tasklist.TaskList, error)

	// AttachUser adds userID to the list and the list to the user. Idempotent.
	AttachUser(ctx context.Context, userID, taskListID string) error

	// DetachUser removes userID from the list and the list from the user.
	// Detaching a non-member is a no-op.
	DetachUser(ctx context.Context, userID, taskListID string) error

	// CheckPermission reports whether userID owns or is attached to the list.
	CheckPermission(ctx context.Context, userID, taskListID string) (bool, error)

	// CheckOwner reports whether userID owns the list.
	CheckOwner(ctx context.Context, userID, taskListID string) (bool, error)

	// ListForUser returns one page of the lists the user owns or is attached
	// to, ordered by creation date.
	ListForUser(ctx context.Context, query tasklist.ListQuery) ([]tasklist.Summary, error)

	// UsersForTaskList returns the users attached to the list.
	UsersForTaskList(ctx context.Context, taskListID string) ([]user.Summary, error)
}
