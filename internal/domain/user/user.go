// Package user holds the User entity. Users are provisioned outside this
// service; their AttachedTaskLists set only changes as a side effect of
// task-list writes.
package user

// User is a principal that can own task lists and be attached to others.
type User struct {
	ID                string
	Username          string
	AttachedTaskLists []string
}

// Summary is the narrowed view of a user attached to a task list.
type Summary struct {
	ID       string
	Username string
}

// Summarize projects the user to its id and username.
func (u *User) Summarize() Summary {
	return Summary{ID: u.ID, Username: u.Username}
}
