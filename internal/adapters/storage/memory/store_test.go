package memory

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// uid derives a stable ObjectID hex id from a short test name.
func uid(name string) string {
	var oid bson.ObjectID
	copy(oid[len(oid)-len(name):], name)
	return oid.Hex()
}

func seeded(t *testing.T, names ...string) *Store {
	t.Helper()
	s := New()
	for _, name := range names {
		require.NoError(t, s.SeedUser(user.User{ID: uid(name), Username: "name-" + name}))
	}
	return s
}

func create(t *testing.T, s *Store, owner string, attached ...string) *tasklist.TaskList {
	t.Helper()
	l, err := s.CreateTaskList(context.Background(), &tasklist.TaskList{
		Name:          "list",
		OwnerID:       owner,
		CreationDate:  baseTime,
		AttachedUsers: attached,
	})
	require.NoError(t, err)
	return l
}

// requireConsistent checks both directions of the membership relation over
// the whole store.
func requireConsistent(t *testing.T, s *Store) {
	t.Helper()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.state.lists {
		for _, uid := range l.AttachedUsers {
			u, ok := s.state.users[uid]
			require.Truef(t, ok, "list %s references unknown user %s", l.ID, uid)
			assert.Containsf(t, u.AttachedTaskLists, l.ID, "user %s missing list %s", uid, l.ID)
		}
	}
	for _, u := range s.state.users {
		for _, lid := range u.AttachedTaskLists {
			l, ok := s.state.lists[lid]
			require.Truef(t, ok, "user %s references deleted list %s", u.ID, lid)
			assert.Containsf(t, l.AttachedUsers, u.ID, "list %s missing user %s", lid, u.ID)
		}
	}
}

func TestStore_CreateTaskList(t *testing.T) {
	t.Parallel()

	t.Run("links every attached user", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a", "b")

		l := create(t, s, uid("owner"), uid("a"), uid("b"))

		require.NotEmpty(t, l.ID)
		for _, id := range []string{uid("a"), uid("b")} {
			u, ok := s.User(id)
			require.True(t, ok)
			assert.Equal(t, []string{l.ID}, u.AttachedTaskLists)
		}
		assert.Equal(t, []string{}, l.Tasks)
		requireConsistent(t, s)
	})

	t.Run("unknown attached user leaves store untouched", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")

		_, err := s.CreateTaskList(context.Background(), &tasklist.TaskList{
			Name:          "list",
			OwnerID:       uid("owner"),
			AttachedUsers: []string{uid("a"), uid("ghost")},
		})
		require.ErrorIs(t, err, domain.ErrInvalidReference)

		u, _ := s.User(uid("a"))
		assert.Empty(t, u.AttachedTaskLists)
		assert.Empty(t, s.state.lists)
	})

	t.Run("does not alias caller slices", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")

		in := &tasklist.TaskList{Name: "list", OwnerID: uid("owner"), AttachedUsers: []string{uid("a")}}
		l, err := s.CreateTaskList(context.Background(), in)
		require.NoError(t, err)

		in.AttachedUsers[0] = uid("mutated")
		got, err := s.GetTaskList(context.Background(), l.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{uid("a")}, got.AttachedUsers)
	})
}

func TestStore_UpdateTaskList(t *testing.T) {
	t.Parallel()

	t.Run("syncs removed and added users", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a", "b", "c")
		l := create(t, s, uid("owner"), uid("a"), uid("b"))

		got, err := s.UpdateTaskList(context.Background(), &tasklist.TaskList{
			ID:            l.ID,
			Name:          "renamed",
			AttachedUsers: []string{uid("b"), uid("c")},
		})
		require.NoError(t, err)

		assert.Equal(t, "renamed", got.Name)
		assert.Equal(t, uid("owner"), got.OwnerID)
		assert.True(t, got.CreationDate.Equal(baseTime))
		assert.Equal(t, []string{uid("b"), uid("c")}, got.AttachedUsers)

		a, _ := s.User(uid("a"))
		assert.NotContains(t, a.AttachedTaskLists, l.ID)
		c, _ := s.User(uid("c"))
		assert.Contains(t, c.AttachedTaskLists, l.ID)
		requireConsistent(t, s)
	})

	t.Run("absent collections keep stored values", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")
		l := create(t, s, uid("owner"), uid("a"))

		got, err := s.UpdateTaskList(context.Background(), &tasklist.TaskList{ID: l.ID, Name: "renamed"})
		require.NoError(t, err)
		assert.Equal(t, []string{uid("a")}, got.AttachedUsers)
		requireConsistent(t, s)
	})

	t.Run("empty attached users clears membership", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")
		l := create(t, s, uid("owner"), uid("a"))

		got, err := s.UpdateTaskList(context.Background(), &tasklist.TaskList{ID: l.ID, Name: "x", AttachedUsers: []string{}})
		require.NoError(t, err)
		assert.Empty(t, got.AttachedUsers)

		a, _ := s.User(uid("a"))
		assert.Empty(t, a.AttachedTaskLists)
		requireConsistent(t, s)
	})

	t.Run("non-existent list", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner")

		_, err := s.UpdateTaskList(context.Background(), &tasklist.TaskList{ID: "missing", Name: "x"})
		require.ErrorIs(t, err, domain.ErrInvalidReference)
	})

	t.Run("failed link rolls back unlink and rename", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")
		l := create(t, s, uid("owner"), uid("a"))

		_, err := s.UpdateTaskList(context.Background(), &tasklist.TaskList{
			ID:            l.ID,
			Name:          "renamed",
			AttachedUsers: []string{uid("ghost")},
		})
		require.ErrorIs(t, err, domain.ErrInvalidReference)

		got, err := s.GetTaskList(context.Background(), l.ID)
		require.NoError(t, err)
		assert.Equal(t, "list", got.Name)
		assert.Equal(t, []string{uid("a")}, got.AttachedUsers)
		a, _ := s.User(uid("a"))
		assert.Equal(t, []string{l.ID}, a.AttachedTaskLists)
	})
}

func TestStore_DeleteTaskList(t *testing.T) {
	t.Parallel()

	t.Run("no user retains the id", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a", "b")
		l := create(t, s, uid("owner"), uid("a"), uid("b"))
		keep := create(t, s, uid("owner"), uid("a"))

		require.NoError(t, s.DeleteTaskList(context.Background(), l.ID))

		_, err := s.GetTaskList(context.Background(), l.ID)
		require.ErrorIs(t, err, domain.ErrInvalidReference)

		a, _ := s.User(uid("a"))
		assert.Equal(t, []string{keep.ID}, a.AttachedTaskLists)
		b, _ := s.User(uid("b"))
		assert.Empty(t, b.AttachedTaskLists)
		requireConsistent(t, s)
	})

	t.Run("missing list", func(t *testing.T) {
		t.Parallel()
		s := seeded(t)
		require.ErrorIs(t, s.DeleteTaskList(context.Background(), "missing"), domain.ErrInvalidReference)
	})
}

func TestStore_AttachDetach(t *testing.T) {
	t.Parallel()

	t.Run("attach twice equals attach once", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")
		l := create(t, s, uid("owner"))

		require.NoError(t, s.AttachUser(context.Background(), uid("a"), l.ID))
		require.NoError(t, s.AttachUser(context.Background(), uid("a"), l.ID))

		got, _ := s.GetTaskList(context.Background(), l.ID)
		assert.Equal(t, []string{uid("a")}, got.AttachedUsers)
		a, _ := s.User(uid("a"))
		assert.Equal(t, []string{l.ID}, a.AttachedTaskLists)
		requireConsistent(t, s)
	})

	t.Run("detach twice equals detach once", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner", "a")
		l := create(t, s, uid("owner"), uid("a"))

		require.NoError(t, s.DetachUser(context.Background(), uid("a"), l.ID))
		require.NoError(t, s.DetachUser(context.Background(), uid("a"), l.ID))

		got, _ := s.GetTaskList(context.Background(), l.ID)
		assert.Empty(t, got.AttachedUsers)
		a, _ := s.User(uid("a"))
		assert.Empty(t, a.AttachedTaskLists)
		requireConsistent(t, s)
	})

	t.Run("unknown user or list", func(t *testing.T) {
		t.Parallel()
		s := seeded(t, "owner")
		l := create(t, s, uid("owner"))

		require.ErrorIs(t, s.AttachUser(context.Background(), uid("ghost"), l.ID), domain.ErrInvalidReference)
		require.ErrorIs(t, s.AttachUser(context.Background(), uid("owner"), "missing"), domain.ErrInvalidReference)
		require.ErrorIs(t, s.DetachUser(context.Background(), uid("ghost"), l.ID), domain.ErrInvalidReference)
	})
}

func TestStore_Checks(t *testing.T) {
	t.Parallel()

	s := seeded(t, "owner", "a", "stranger")
	l := create(t, s, uid("owner"), uid("a"))
	ctx := context.Background()

	ok, err := s.CheckOwner(ctx, uid("a"), l.ID)
	require.NoError(t, err)
	assert.False(t, ok, "attached user is not owner")

	ok, err = s.CheckPermission(ctx, uid("a"), l.ID)
	require.NoError(t, err)
	assert.True(t, ok, "attached user has permission")

	ok, err = s.CheckPermission(ctx, uid("stranger"), l.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CheckOwner(ctx, uid("owner"), l.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.CheckPermission(ctx, uid("owner"), "missing")
	require.ErrorIs(t, err, domain.ErrInvalidReference)
	_, err = s.CheckOwner(ctx, uid("owner"), "missing")
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestStore_ListForUser(t *testing.T) {
	t.Parallel()

	s := seeded(t, "owner", "a")
	ctx := context.Background()
	for i := range 25 {
		_, err := s.CreateTaskList(ctx, &tasklist.TaskList{
			Name:         fmt.Sprintf("list-%02d", i),
			OwnerID:      uid("owner"),
			CreationDate: baseTime.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		page int
		want int
	}{
		{page: 1, want: 10},
		{page: 3, want: 5},
		{page: 4, want: 0},
	}
	for _, tt := range tests {
		got, err := s.ListForUser(ctx, tasklist.ListQuery{UserID: uid("owner"), Page: tt.page, PageSize: 10, Ascending: true})
		require.NoError(t, err)
		assert.Lenf(t, got, tt.want, "page %d", tt.page)
	}

	asc, err := s.ListForUser(ctx, tasklist.ListQuery{UserID: uid("owner"), Page: 1, PageSize: 25, Ascending: true})
	require.NoError(t, err)
	require.Len(t, asc, 25)
	for i := range asc {
		assert.Equal(t, fmt.Sprintf("list-%02d", i), asc[i].Name)
	}

	desc, err := s.ListForUser(ctx, tasklist.ListQuery{UserID: uid("owner"), Page: 1, PageSize: 3, Ascending: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"list-24", "list-23", "list-22"}, []string{desc[0].Name, desc[1].Name, desc[2].Name})

	none, err := s.ListForUser(ctx, tasklist.ListQuery{UserID: uid("a"), Page: 1, PageSize: 10, Ascending: true})
	require.NoError(t, err)
	assert.Empty(t, none)

	first := asc[0]
	require.NoError(t, s.AttachUser(ctx, uid("a"), first.ID))
	shared, err := s.ListForUser(ctx, tasklist.ListQuery{UserID: uid("a"), Page: 1, PageSize: 10, Ascending: true})
	require.NoError(t, err)
	assert.Equal(t, []tasklist.Summary{first}, shared)
}

func TestStore_UsersForTaskList(t *testing.T) {
	t.Parallel()

	s := seeded(t, "owner", "a", "b")
	l := create(t, s, uid("owner"), uid("b"), uid("a"))

	got, err := s.UsersForTaskList(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, []user.Summary{{ID: uid("a"), Username: "name-a"}, {ID: uid("b"), Username: "name-b"}}, got)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s := seeded(t, "owner", "a")
	l := create(t, s, uid("owner"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.AttachUser(ctx, uid("a"), l.ID)
	require.ErrorIs(t, err, domain.ErrStorageFailure)
	require.ErrorIs(t, err, context.Canceled)

	a, _ := s.User(uid("a"))
	assert.Empty(t, a.AttachedTaskLists)
}

func TestStore_SeedUserRequiresObjectID(t *testing.T) {
	t.Parallel()

	s := New()
	require.Error(t, s.SeedUser(user.User{ID: "alice", Username: "alice"}))
	_, ok := s.User("alice")
	assert.False(t, ok)

	require.NoError(t, s.SeedUser(user.User{ID: uid("alice"), Username: "alice"}))

	_, err := s.CreateTaskList(context.Background(), &tasklist.TaskList{
		Name:          "list",
		OwnerID:       uid("alice"),
		AttachedUsers: []string{"alice"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestStore_ListForUserRejectsOutOfRangePaging(t *testing.T) {
	t.Parallel()

	s := seeded(t, "owner")
	create(t, s, uid("owner"))
	create(t, s, uid("owner"))

	tests := []struct {
		name  string
		query tasklist.ListQuery
	}{
		{name: "skip overflows", query: tasklist.ListQuery{UserID: uid("owner"), Page: math.MaxInt/2 + 2, PageSize: 2}},
		{name: "page size max int", query: tasklist.ListQuery{UserID: uid("owner"), Page: 1, PageSize: math.MaxInt}},
		{name: "page size above max", query: tasklist.ListQuery{UserID: uid("owner"), Page: 1, PageSize: tasklist.MaxPageSize + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := s.ListForUser(context.Background(), tt.query)
			require.ErrorIs(t, err, domain.ErrBadInput)
			assert.Nil(t, got)
		})
	}

	got, err := s.ListForUser(context.Background(), tasklist.ListQuery{UserID: uid("owner"), Page: 1, PageSize: tasklist.MaxPageSize})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
