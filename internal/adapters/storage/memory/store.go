// Package memory provides an in-process implementation of
// ports.TaskListRepository for the local profile and tests. It follows the
// same membership and error semantics as the MongoDB adapter.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// Compile-time check that Store implements ports.TaskListRepository.
var _ ports.TaskListRepository = (*Store)(nil)

type state struct {
	users map[string]*user.User
	lists map[string]*tasklist.TaskList
}

func newState() state {
	return state{
		users: make(map[string]*user.User),
		lists: make(map[string]*tasklist.TaskList),
	}
}

func (s state) clone() state {
	c := newState()
	for id, u := range s.users {
		c.users[id] = cloneUser(u)
	}
	for id, l := range s.lists {
		c.lists[id] = l.Clone()
	}
	return c
}

// Store keeps users and task lists in memory. Writes run against a cloned
// state that replaces the live one only when every step succeeds.
type Store struct {
	mu    sync.RWMutex
	state state
	newID func() string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		state: newState(),
		newID: func() string { return bson.NewObjectID().Hex() },
	}
}

// SeedUser inserts or replaces a user. Users are provisioned outside this
// service, so this is the only way to create one here. The id must be
// ObjectID hex, as in MongoDB, so both stores resolve the same ids.
func (s *Store) SeedUser(u user.User) error {
	if _, err := bson.ObjectIDFromHex(u.ID); err != nil {
		return fmt.Errorf("seed user %q: %w", u.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u.AttachedTaskLists == nil {
		u.AttachedTaskLists = []string{}
	}
	s.state.users[u.ID] = cloneUser(&u)
	return nil
}

// User returns a copy of a stored user.
func (s *Store) User(id string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.state.users[id]
	if !ok {
		return user.User{}, false
	}
	return *cloneUser(u), true
}

// CreateTaskList inserts list and links every attached user in one step.
func (s *Store) CreateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	var created *tasklist.TaskList
	err := s.inTransaction(ctx, func(tx *state) error {
		stored := list.Clone()
		stored.ID = s.newID()
		stored.CreationDate = stored.CreationDate.UTC()
		stored.AttachedUsers = tasklist.Normalize(stored.AttachedUsers)
		if stored.Tasks == nil {
			stored.Tasks = []string{}
		}

		tx.lists[stored.ID] = stored
		if err := applyPlan(tx, tasklist.PlanCreate(stored)); err != nil {
			return err
		}
		created = stored.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTaskList merges list into the stored list and syncs the users whose
// membership changed.
func (s *Store) UpdateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	var updated *tasklist.TaskList
	err := s.inTransaction(ctx, func(tx *state) error {
		stored, ok := tx.lists[list.ID]
		if !ok {
			return missingList(list.ID)
		}

		merged := tasklist.MergeUpdate(stored, list)
		if err := applyPlan(tx, tasklist.PlanUpdate(stored, list)); err != nil {
			return err
		}
		tx.lists[merged.ID] = merged
		updated = merged.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTaskList removes the list and unlinks it from its attached users.
func (s *Store) DeleteTaskList(ctx context.Context, id string) error {
	return s.inTransaction(ctx, func(tx *state) error {
		stored, ok := tx.lists[id]
		if !ok {
			return missingList(id)
		}
		if err := applyPlan(tx, tasklist.PlanDelete(stored)); err != nil {
			return err
		}
		delete(tx.lists, id)
		return nil
	})
}

// GetTaskList returns a copy of the stored list.
func (s *Store) GetTaskList(ctx context.Context, id string) (*tasklist.TaskList, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageFailure(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.state.lists[id]
	if !ok {
		return nil, missingList(id)
	}
	return l.Clone(), nil
}

// AttachUser adds the user and list to each other's sets.
func (s *Store) AttachUser(ctx context.Context, userID, taskListID string) error {
	return s.inTransaction(ctx, func(tx *state) error {
		l, u, err := lookupPair(tx, userID, taskListID)
		if err != nil {
			return err
		}
		l.AttachedUsers = tasklist.AddMember(l.AttachedUsers, userID)
		u.AttachedTaskLists = tasklist.AddMember(u.AttachedTaskLists, taskListID)
		return nil
	})
}

// DetachUser removes the user and list from each other's sets.
func (s *Store) DetachUser(ctx context.Context, userID, taskListID string) error {
	return s.inTransaction(ctx, func(tx *state) error {
		l, u, err := lookupPair(tx, userID, taskListID)
		if err != nil {
			return err
		}
		l.AttachedUsers = tasklist.RemoveMember(l.AttachedUsers, userID)
		u.AttachedTaskLists = tasklist.RemoveMember(u.AttachedTaskLists, taskListID)
		return nil
	})
}

// CheckPermission reports whether userID owns or is attached to the list.
func (s *Store) CheckPermission(ctx context.Context, userID, taskListID string) (bool, error) {
	l, err := s.GetTaskList(ctx, taskListID)
	if err != nil {
		return false, err
	}
	return l.HasAccess(userID), nil
}

// CheckOwner reports whether userID owns the list.
func (s *Store) CheckOwner(ctx context.Context, userID, taskListID string) (bool, error) {
	l, err := s.GetTaskList(ctx, taskListID)
	if err != nil {
		return false, err
	}
	return l.IsOwner(userID), nil
}

// ListForUser sorts every visible list by creation date, then pages.
func (s *Store) ListForUser(ctx context.Context, query tasklist.ListQuery) ([]tasklist.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, storageFailure(err)
	}

	s.mu.RLock()
	visible := make([]*tasklist.TaskList, 0)
	for _, l := range s.state.lists {
		if l.HasAccess(query.UserID) {
			visible = append(visible, l)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(visible, func(a, b *tasklist.TaskList) int {
		c := a.CreationDate.Compare(b.CreationDate)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !query.Ascending {
			c = -c
		}
		return c
	})

	skip := query.Skip()
	if skip >= len(visible) {
		return []tasklist.Summary{}, nil
	}
	end := min(len(visible), skip+query.PageSize)

	out := make([]tasklist.Summary, 0, end-skip)
	for _, l := range visible[skip:end] {
		out = append(out, l.Summarize())
	}
	return out, nil
}

// UsersForTaskList returns the users whose attached set contains the list.
func (s *Store) UsersForTaskList(ctx context.Context, taskListID string) ([]user.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageFailure(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.Summary, 0)
	for _, u := range s.state.users {
		if tasklist.Contains(u.AttachedTaskLists, taskListID) {
			out = append(out, u.Summarize())
		}
	}
	slices.SortFunc(out, func(a, b user.Summary) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// inTransaction runs fn against a clone of the state and swaps it in when fn
// succeeds and ctx is still live.
func (s *Store) inTransaction(ctx context.Context, fn func(tx *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return storageFailure(err)
	}

	tx := s.state.clone()
	if err := fn(&tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return storageFailure(err)
	}

	s.state = tx
	return nil
}

// applyPlan updates the user side of the relation. Missing users are an
// error when linking and skipped when unlinking.
func applyPlan(tx *state, plan tasklist.SyncPlan) error {
	for _, id := range plan.Unlink {
		if u, ok := tx.users[id]; ok {
			u.AttachedTaskLists = tasklist.RemoveMember(u.AttachedTaskLists, plan.TaskListID)
		}
	}
	for _, id := range plan.Link {
		u, ok := tx.users[id]
		if !ok {
			return fmt.Errorf("%w: user %s", domain.ErrInvalidReference, id)
		}
		u.AttachedTaskLists = tasklist.AddMember(u.AttachedTaskLists, plan.TaskListID)
	}
	return nil
}

func lookupPair(tx *state, userID, taskListID string) (*tasklist.TaskList, *user.User, error) {
	l, ok := tx.lists[taskListID]
	if !ok {
		return nil, nil, missingList(taskListID)
	}
	u, ok := tx.users[userID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: user %s", domain.ErrInvalidReference, userID)
	}
	return l, u, nil
}

func missingList(id string) error {
	return fmt.Errorf("%w: task list %s", domain.ErrInvalidReference, id)
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
}

func cloneUser(u *user.User) *user.User {
	c := *u
	c.AttachedTaskLists = slices.Clone(u.AttachedTaskLists)
	return &c
}
