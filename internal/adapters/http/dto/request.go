package dto

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
)

var validate = newValidator()

// newValidator reports failures under the wire name of each field: the
// query tag for query parameters, the json tag for bodies.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// validateStruct runs the validate tags on v. Failures are returned as a
// *domain.ValidationError keyed by wire field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// ListTaskListsQuery holds the parameters of GET /user/taskLists.
type ListTaskListsQuery struct {
	UserID    string `query:"userId" validate:"required"`
	Page      int    `query:"page" validate:"min=1"`
	PageSize  int    `query:"pageSize" validate:"min=1,max=1000"`
	Ascending bool   `query:"ascSort"`
}

// ParseListTaskListsQuery binds and validates the listing parameters.
// A missing ascSort means descending.
func ParseListTaskListsQuery(q url.Values) (*ListTaskListsQuery, error) {
	fields := make(map[string]string)
	req := &ListTaskListsQuery{
		UserID:    q.Get("userId"),
		Page:      intParam(q, "page", fields),
		PageSize:  intParam(q, "pageSize", fields),
		Ascending: boolParam(q, "ascSort", fields),
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// TaskListQuery holds the parameters of GET /taskList and GET /taskList/users.
type TaskListQuery struct {
	UserID     string `query:"userId" validate:"required"`
	TaskListID string `query:"taskId" validate:"required"`
}

// ParseTaskListQuery binds and validates a read of one task list.
func ParseTaskListQuery(q url.Values) (*TaskListQuery, error) {
	req := &TaskListQuery{
		UserID:     q.Get("userId"),
		TaskListID: q.Get("taskId"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// DeleteTaskListQuery holds the parameters of DELETE /taskList.
type DeleteTaskListQuery struct {
	UserID     string `query:"userId" validate:"required"`
	TaskListID string `query:"taskListId" validate:"required"`
}

// ParseDeleteTaskListQuery binds and validates a delete request.
func ParseDeleteTaskListQuery(q url.Values) (*DeleteTaskListQuery, error) {
	req := &DeleteTaskListQuery{
		UserID:     q.Get("userId"),
		TaskListID: q.Get("taskListId"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// MembershipQuery holds the parameters of PUT /taskList/attach and
// PUT /taskList/detach.
type MembershipQuery struct {
	UserID         string `query:"userId" validate:"required"`
	AttachedUserID string `query:"attachedUserId" validate:"required"`
	TaskListID     string `query:"taskListId" validate:"required"`
}

// ParseMembershipQuery binds and validates an attach or detach request.
func ParseMembershipQuery(q url.Values) (*MembershipQuery, error) {
	req := &MembershipQuery{
		UserID:         q.Get("userId"),
		AttachedUserID: q.Get("attachedUserId"),
		TaskListID:     q.Get("taskListId"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// UserQuery holds the caller identity sent alongside a body.
type UserQuery struct {
	UserID string `query:"userId" validate:"required"`
}

// ParseUserQuery binds and validates the caller identity.
func ParseUserQuery(q url.Values) (*UserQuery, error) {
	req := &UserQuery{UserID: q.Get("userId")}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// CreateTaskListRequest represents the JSON body of POST /taskList. Any id,
// owner or creation date sent by the client is ignored.
type CreateTaskListRequest struct {
	Name          string   `json:"name" validate:"required"`
	Tasks         []string `json:"tasks"`
	AttachedUsers []string `json:"attachedUsers"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskListRequest) Validate() error {
	return validateStruct(r)
}

// UpdateTaskListRequest represents the JSON body of PUT /taskList. A null
// or absent tasks or attachedUsers keeps the stored value; an empty array
// clears it.
type UpdateTaskListRequest struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Tasks         []string `json:"tasks"`
	AttachedUsers []string `json:"attachedUsers"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskListRequest) Validate() error {
	return validateStruct(r)
}

func intParam(q url.Values, name string, fields map[string]string) int {
	raw := q.Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = "must be a valid integer"
	}
	return n
}

func boolParam(q url.Values, name string, fields map[string]string) bool {
	raw := q.Get(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		fields[name] = "must be true or false"
	}
	return b
}
