package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToTaskListResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		list   tasklist.TaskList
		verify func(t *testing.T, got dto.TaskListResponse)
	}{
		{
			name: "maps all fields correctly",
			list: tasklist.TaskList{
				ID:            "L1",
				Name:          "groceries",
				OwnerID:       "u1",
				CreationDate:  testTime,
				Tasks:         []string{"t1", "t2"},
				AttachedUsers: []string{"u2"},
			},
			verify: func(t *testing.T, got dto.TaskListResponse) {
				t.Helper()
				if got.ID != "L1" || got.Name != "groceries" || got.OwnerID != "u1" {
					t.Errorf("identity fields = %+v", got)
				}
				if got.CreationDate != "2026-02-12T15:04:05Z" {
					t.Errorf("CreationDate = %q, want %q", got.CreationDate, "2026-02-12T15:04:05Z")
				}
				if len(got.Tasks) != 2 || len(got.AttachedUsers) != 1 {
					t.Errorf("Tasks = %v, AttachedUsers = %v", got.Tasks, got.AttachedUsers)
				}
			},
		},
		{
			name: "creation date rendered in UTC",
			list: tasklist.TaskList{
				ID:           "L1",
				CreationDate: time.Date(2026, 2, 12, 17, 4, 5, 0, time.FixedZone("EET", 2*60*60)),
			},
			verify: func(t *testing.T, got dto.TaskListResponse) {
				t.Helper()
				if got.CreationDate != "2026-02-12T15:04:05Z" {
					t.Errorf("CreationDate = %q, want UTC", got.CreationDate)
				}
			},
		},
		{
			name: "nil slices render as empty arrays",
			list: tasklist.TaskList{ID: "L1", CreationDate: testTime},
			verify: func(t *testing.T, got dto.TaskListResponse) {
				t.Helper()
				b, err := json.Marshal(got)
				if err != nil {
					t.Fatalf("Marshal() error = %v", err)
				}
				if strings.Contains(string(b), "null") {
					t.Errorf("JSON = %s, want no null arrays", b)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToTaskListResponse(&tt.list))
		})
	}
}

func TestToTaskListSummaries_OnlyIDAndName(t *testing.T) {
	t.Parallel()

	got := dto.ToTaskListSummaries([]tasklist.Summary{{ID: "L1", Name: "a"}, {ID: "L2", Name: "b"}})

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("len = %d, want 2", len(decoded))
	}
	for _, item := range decoded {
		if len(item) != 2 {
			t.Errorf("item keys = %v, want only id and name", item)
		}
	}
}

func TestToTaskListSummaries_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.ToTaskListSummaries(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("JSON = %s, want []", b)
	}
}

func TestToUserSummaries(t *testing.T) {
	t.Parallel()

	got := dto.ToUserSummaries([]user.Summary{{ID: "u2", Username: "alice"}})
	if len(got) != 1 || got[0].ID != "u2" || got[0].Username != "alice" {
		t.Errorf("ToUserSummaries() = %+v", got)
	}
}
