// Package tasklist holds the TaskList aggregate and the membership rules that
// keep TaskList.AttachedUsers and User.AttachedTaskLists in agreement.
package tasklist

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
)

// TaskList is a named, owned collection of task references shared with zero
// or more attached users.
//
// Tasks and AttachedUsers distinguish nil from empty: in an update payload a
// nil slice means "keep the stored value" while an empty slice clears it.
type TaskList struct {
	ID            string
	Name          string
	OwnerID       string
	CreationDate  time.Time
	Tasks         []string
	AttachedUsers []string
}

// Summary is the narrowed list view of a task list.
type Summary struct {
	ID   string
	Name string
}

// MaxPageSize bounds ListQuery.PageSize.
const MaxPageSize = 1000

// ListQuery selects the task lists visible to a user, one page at a time.
// Page is 1-based.
type ListQuery struct {
	UserID    string
	Page      int
	PageSize  int
	Ascending bool
}

// Skip returns the number of matching lists that precede the page. Only
// meaningful for a query that passed Validate; otherwise it is 0.
func (q ListQuery) Skip() int {
	if q.Page < 1 || q.PageSize < 1 || q.pageOverflows() {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// pageOverflows reports whether the end of the page, skip plus PageSize,
// does not fit in an int. PageSize must be positive.
func (q ListQuery) pageOverflows() bool {
	return q.Page-1 > (math.MaxInt-q.PageSize)/q.PageSize
}

// Validate checks the pagination arguments.
func (q ListQuery) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(q.UserID) == "" {
		fields["userId"] = domain.MsgRequired
	}
	if q.Page < 1 {
		fields["page"] = "must be >= 1"
	}
	switch {
	case q.PageSize < 1:
		fields["pageSize"] = "must be >= 1"
	case q.PageSize > MaxPageSize:
		fields["pageSize"] = "must be <= " + strconv.Itoa(MaxPageSize)
	case q.Page >= 1 && q.pageOverflows():
		fields["page"] = "is out of range"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks business rules for a task list about to be created.
func (t *TaskList) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOwner reports whether userID owns the list.
func (t *TaskList) IsOwner(userID string) bool {
	return t.OwnerID == userID
}

// HasAccess reports whether userID owns the list or is attached to it.
func (t *TaskList) HasAccess(userID string) bool {
	return t.IsOwner(userID) || Contains(t.AttachedUsers, userID)
}

// Summarize projects the list to its id and name.
func (t *TaskList) Summarize() Summary {
	return Summary{ID: t.ID, Name: t.Name}
}

// Clone returns a deep copy, preserving nil slices.
func (t *TaskList) Clone() *TaskList {
	c := *t
	c.Tasks = cloneSet(t.Tasks)
	c.AttachedUsers = cloneSet(t.AttachedUsers)
	return &c
}

func cloneSet(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
