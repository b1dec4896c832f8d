package dto_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/usertask-service/internal/domain"
)

// requireValidationField asserts err wraps ErrBadInput and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrBadInput) {
		t.Errorf("errors.Is(err, ErrBadInput) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestParseListTaskListsQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		want      dto.ListTaskListsQuery
		wantField string
	}{
		{
			name:  "all parameters",
			query: "userId=u1&page=2&pageSize=10&ascSort=true",
			want:  dto.ListTaskListsQuery{UserID: "u1", Page: 2, PageSize: 10, Ascending: true},
		},
		{
			name:  "missing ascSort is descending",
			query: "userId=u1&page=1&pageSize=5",
			want:  dto.ListTaskListsQuery{UserID: "u1", Page: 1, PageSize: 5},
		},
		{
			name:      "missing userId",
			query:     "page=1&pageSize=5",
			wantField: "userId",
		},
		{
			name:      "page zero",
			query:     "userId=u1&page=0&pageSize=5",
			wantField: "page",
		},
		{
			name:      "missing pageSize",
			query:     "userId=u1&page=1",
			wantField: "pageSize",
		},
		{
			name:      "pageSize above max",
			query:     "userId=u1&page=1&pageSize=1001",
			wantField: "pageSize",
		},
		{
			name:  "pageSize at max",
			query: "userId=u1&page=1&pageSize=1000",
			want:  dto.ListTaskListsQuery{UserID: "u1", Page: 1, PageSize: 1000},
		},
		{
			name:      "non-numeric page",
			query:     "userId=u1&page=first&pageSize=5",
			wantField: "page",
		},
		{
			name:      "malformed ascSort",
			query:     "userId=u1&page=1&pageSize=5&ascSort=up",
			wantField: "ascSort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}

			got, err := dto.ParseListTaskListsQuery(q)
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("ParseListTaskListsQuery() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseListTaskListsQuery() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseTaskListQuery(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseTaskListQuery(url.Values{"userId": {"u1"}, "taskId": {"L1"}})
	if err != nil {
		t.Fatalf("ParseTaskListQuery() error = %v", err)
	}
	if got.UserID != "u1" || got.TaskListID != "L1" {
		t.Errorf("ParseTaskListQuery() = %+v", got)
	}

	_, err = dto.ParseTaskListQuery(url.Values{"userId": {"u1"}})
	requireValidationField(t, err, "taskId")
}

func TestParseDeleteTaskListQuery(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseDeleteTaskListQuery(url.Values{"userId": {"u1"}, "taskListId": {"L1"}})
	if err != nil {
		t.Fatalf("ParseDeleteTaskListQuery() error = %v", err)
	}
	if got.TaskListID != "L1" {
		t.Errorf("TaskListID = %q, want %q", got.TaskListID, "L1")
	}

	_, err = dto.ParseDeleteTaskListQuery(url.Values{"taskListId": {"L1"}})
	requireValidationField(t, err, "userId")
}

func TestParseMembershipQuery(t *testing.T) {
	t.Parallel()

	got, err := dto.ParseMembershipQuery(url.Values{
		"userId":         {"u1"},
		"attachedUserId": {"u2"},
		"taskListId":     {"L1"},
	})
	if err != nil {
		t.Fatalf("ParseMembershipQuery() error = %v", err)
	}
	if got.AttachedUserID != "u2" {
		t.Errorf("AttachedUserID = %q, want %q", got.AttachedUserID, "u2")
	}

	_, err = dto.ParseMembershipQuery(url.Values{"userId": {"u1"}, "taskListId": {"L1"}})
	requireValidationField(t, err, "attachedUserId")
}

func TestParseUserQuery(t *testing.T) {
	t.Parallel()

	_, err := dto.ParseUserQuery(url.Values{})
	requireValidationField(t, err, "userId")
}

func TestCreateTaskListRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.CreateTaskListRequest{Name: "groceries"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := dto.CreateTaskListRequest{AttachedUsers: []string{"u2"}}
	requireValidationField(t, missing.Validate(), "name")
}

func TestUpdateTaskListRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTaskListRequest
		wantField string
	}{
		{name: "valid", req: dto.UpdateTaskListRequest{ID: "L1", Name: "x"}},
		{name: "missing id", req: dto.UpdateTaskListRequest{Name: "x"}, wantField: "id"},
		{name: "missing name", req: dto.UpdateTaskListRequest{ID: "L1"}, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
