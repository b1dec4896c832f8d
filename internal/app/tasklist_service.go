// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// Compile-time check that TaskListService implements ports.TaskListService.
var _ ports.TaskListService = (*TaskListService)(nil)

// TaskListService implements ports.TaskListService. It is the authorization
// gate in front of the repository: every operation on an existing list first
// asks the repository whether the requester owns or is attached to it.
// Membership bookkeeping is left entirely to the repository.
type TaskListService struct {
	repo   ports.TaskListRepository
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a TaskListService.
type Option func(*TaskListService)

// WithClock overrides the clock used to stamp CreationDate.
func WithClock(now func() time.Time) Option {
	return func(s *TaskListService) {
		s.now = now
	}
}

// NewTaskListService creates a TaskListService backed by repo. A nil logger
// discards output.
func NewTaskListService(repo ports.TaskListRepository, logger *slog.Logger, opts ...Option) *TaskListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &TaskListService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTaskList stamps the owner and creation date and creates the list.
// No permission check applies.
func (s *TaskListService) CreateTaskList(ctx context.Context, userID string, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "creating task list", slog.String("user_id", userID))

	if err := requireIDs(map[string]string{"userId": userID}); err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	list.ID = ""
	list.OwnerID = userID
	list.CreationDate = s.now().UTC()

	created, err := s.repo.CreateTaskList(ctx, list)
	if err != nil {
		s.logFailure(ctx, "CreateTaskList", userID, "", err)
		return nil, translate(err)
	}

	return created, nil
}

// GetTaskList returns a list the requester owns or is attached to.
func (s *TaskListService) GetTaskList(ctx context.Context, userID, taskListID string) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "fetching task list",
		slog.String("user_id", userID),
		slog.String("task_list_id", taskListID),
	)

	if err := s.authorize(ctx, "GetTaskList", s.repo.CheckPermission, userID, taskListID); err != nil {
		return nil, err
	}

	list, err := s.repo.GetTaskList(ctx, taskListID)
	if err != nil {
		s.logFailure(ctx, "GetTaskList", userID, taskListID, err)
		return nil, translate(err)
	}

	return list, nil
}

// GetUsersForTaskList returns the users attached to a list the requester can
// access.
func (s *TaskListService) GetUsersForTaskList(ctx context.Context, userID, taskListID string) ([]user.Summary, error) {
	s.logger.InfoContext(ctx, "fetching task list users",
		slog.String("user_id", userID),
		slog.String("task_list_id", taskListID),
	)

	if err := s.authorize(ctx, "GetUsersForTaskList", s.repo.CheckPermission, userID, taskListID); err != nil {
		return nil, err
	}

	users, err := s.repo.UsersForTaskList(ctx, taskListID)
	if err != nil {
		s.logFailure(ctx, "GetUsersForTaskList", userID, taskListID, err)
		return nil, translate(err)
	}

	return users, nil
}

// UpdateTaskList updates a list the requester owns or is attached to.
func (s *TaskListService) UpdateTaskList(ctx context.Context, userID string, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	s.logger.InfoContext(ctx, "updating task list",
		slog.String("user_id", userID),
		slog.String("task_list_id", list.ID),
	)

	if err := list.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, "UpdateTaskList", s.repo.CheckPermission, userID, list.ID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateTaskList(ctx, list)
	if err != nil {
		s.logFailure(ctx, "UpdateTaskList", userID, list.ID, err)
		return nil, translate(err)
	}

	return updated, nil
}

// AttachUser shares a list with attachedUserID.
func (s *TaskListService) AttachUser(ctx context.Context, userID, attachedUserID, taskListID string) error {
	s.logger.InfoContext(ctx, "attaching user to task list",
		slog.String("user_id", userID),
		slog.String("attached_user_id", attachedUserID),
		slog.String("task_list_id", taskListID),
	)

	if err := requireIDs(map[string]string{"attachedUserId": attachedUserID}); err != nil {
		return err
	}
	if err := s.authorize(ctx, "AttachUser", s.repo.CheckPermission, userID, taskListID); err != nil {
		return err
	}

	if err := s.repo.AttachUser(ctx, attachedUserID, taskListID); err != nil {
		s.logFailure(ctx, "AttachUser", userID, taskListID, err)
		return translate(err)
	}

	return nil
}

// DetachUser unshares a list from attachedUserID.
func (s *TaskListService) DetachUser(ctx context.Context, userID, attachedUserID, taskListID string) error {
	s.logger.InfoContext(ctx, "detaching user from task list",
		slog.String("user_id", userID),
		slog.String("attached_user_id", attachedUserID),
		slog.String("task_list_id", taskListID),
	)

	if err := requireIDs(map[string]string{"attachedUserId": attachedUserID}); err != nil {
		return err
	}
	if err := s.authorize(ctx, "DetachUser", s.repo.CheckPermission, userID, taskListID); err != nil {
		return err
	}

	if err := s.repo.DetachUser(ctx, attachedUserID, taskListID); err != nil {
		s.logFailure(ctx, "DetachUser", userID, taskListID, err)
		return translate(err)
	}

	return nil
}

// DeleteTaskList deletes a list. Attached users may not delete.
func (s *TaskListService) DeleteTaskList(ctx context.Context, userID, taskListID string) error {
	s.logger.InfoContext(ctx, "deleting task list",
		slog.String("user_id", userID),
		slog.String("task_list_id", taskListID),
	)

	if err := s.authorize(ctx, "DeleteTaskList", s.repo.CheckOwner, userID, taskListID); err != nil {
		return err
	}

	if err := s.repo.DeleteTaskList(ctx, taskListID); err != nil {
		s.logFailure(ctx, "DeleteTaskList", userID, taskListID, err)
		return translate(err)
	}

	return nil
}

// ListUserTaskLists returns one page of the lists userID owns or is attached
// to. Items are not individually authorized; the query itself is scoped.
func (s *TaskListService) ListUserTaskLists(ctx context.Context, userID string, page, pageSize int, ascending bool) ([]tasklist.Summary, error) {
	s.logger.InfoContext(ctx, "listing task lists",
		slog.String("user_id", userID),
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
		slog.Bool("ascending", ascending),
	)

	query := tasklist.ListQuery{
		UserID:    userID,
		Page:      page,
		PageSize:  pageSize,
		Ascending: ascending,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lists, err := s.repo.ListForUser(ctx, query)
	if err != nil {
		s.logFailure(ctx, "ListUserTaskLists", userID, "", err)
		return nil, translate(err)
	}

	return lists, nil
}

type relationCheck func(ctx context.Context, userID, taskListID string) (bool, error)

// authorize runs check and maps a false result to domain.ErrAccessDenied.
func (s *TaskListService) authorize(ctx context.Context, operation string, check relationCheck, userID, taskListID string) error {
	if err := requireIDs(map[string]string{"userId": userID, "taskListId": taskListID}); err != nil {
		return err
	}

	ok, err := check(ctx, userID, taskListID)
	if err != nil {
		s.logFailure(ctx, operation, userID, taskListID, err)
		return translate(err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "access denied",
			slog.String("operation", operation),
			slog.String("user_id", userID),
			slog.String("task_list_id", taskListID),
		)
		return fmt.Errorf("%w: user %s on task list %s", domain.ErrAccessDenied, userID, taskListID)
	}

	return nil
}

func (s *TaskListService) logFailure(ctx context.Context, operation, userID, taskListID string, err error) {
	s.logger.ErrorContext(ctx, "task list operation failed",
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("task_list_id", taskListID),
		slog.Any("error", err),
	)
}

// translate turns repository reference failures into caller input errors.
// Both kinds stay matchable with errors.Is.
func translate(err error) error {
	if errors.Is(err, domain.ErrInvalidReference) {
		return fmt.Errorf("%w: %w", domain.ErrBadInput, err)
	}
	return err
}

func requireIDs(ids map[string]string) error {
	fields := make(map[string]string)
	for name, id := range ids {
		if strings.TrimSpace(id) == "" {
			fields[name] = domain.MsgRequired
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
