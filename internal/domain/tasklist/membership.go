package tasklist

// The functions in this file are the only place that decides how membership
// changes on both sides of the TaskList <-> User relation. Storage adapters
// compute a SyncPlan here and apply it inside a single transaction together
// with the task-list write.

// SyncPlan lists the users whose AttachedTaskLists must gain (Link) or lose
// (Unlink) TaskListID.
type SyncPlan struct {
	TaskListID string
	Link       []string
	Unlink     []string
}

// Empty reports whether applying the plan would change no user.
func (p SyncPlan) Empty() bool {
	return len(p.Link) == 0 && len(p.Unlink) == 0
}

// PlanCreate links every attached user of a freshly inserted list.
func PlanCreate(list *TaskList) SyncPlan {
	return SyncPlan{
		TaskListID: list.ID,
		Link:       Normalize(list.AttachedUsers),
	}
}

// PlanUpdate compares the stored attachment set with the one an update
// would produce. A nil incoming set leaves attachments untouched.
func PlanUpdate(stored, incoming *TaskList) SyncPlan {
	plan := SyncPlan{TaskListID: stored.ID}
	if incoming.AttachedUsers == nil {
		return plan
	}
	plan.Unlink, plan.Link = Diff(stored.AttachedUsers, incoming.AttachedUsers)
	return plan
}

// PlanDelete unlinks every user attached to a list being deleted.
func PlanDelete(stored *TaskList) SyncPlan {
	return SyncPlan{
		TaskListID: stored.ID,
		Unlink:     Normalize(stored.AttachedUsers),
	}
}

// MergeUpdate builds the list to persist from the stored original and an
// update payload. OwnerID and CreationDate always come from stored; nil
// Tasks or AttachedUsers fall back to the stored values.
func MergeUpdate(stored, incoming *TaskList) *TaskList {
	merged := &TaskList{
		ID:            stored.ID,
		Name:          incoming.Name,
		OwnerID:       stored.OwnerID,
		CreationDate:  stored.CreationDate,
		Tasks:         cloneSet(incoming.Tasks),
		AttachedUsers: Normalize(incoming.AttachedUsers),
	}
	if incoming.Tasks == nil {
		merged.Tasks = cloneSet(stored.Tasks)
	}
	if incoming.AttachedUsers == nil {
		merged.AttachedUsers = Normalize(stored.AttachedUsers)
	}
	if merged.Tasks == nil {
		merged.Tasks = []string{}
	}
	return merged
}

// Diff returns the members of old missing from updated (removed) and the
// members of updated missing from old (added), in order of first appearance.
func Diff(old, updated []string) (removed, added []string) {
	oldSet := toSet(old)
	newSet := toSet(updated)

	for _, id := range Normalize(old) {
		if _, ok := newSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	for _, id := range Normalize(updated) {
		if _, ok := oldSet[id]; !ok {
			added = append(added, id)
		}
	}
	return removed, added
}

// AddMember appends id unless it is already present.
func AddMember(set []string, id string) []string {
	if Contains(set, id) {
		return set
	}
	return append(set, id)
}

// RemoveMember drops every occurrence of id. Removing an absent id is a no-op.
func RemoveMember(set []string, id string) []string {
	out := set[:0:0]
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// Contains reports whether id is a member of set.
func Contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// Normalize drops duplicates and empty ids while keeping first-seen order.
// The result is never nil.
func Normalize(set []string) []string {
	out := make([]string, 0, len(set))
	seen := make(map[string]struct{}, len(set))
	for _, id := range set {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toSet(s []string) map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}
	return m
}
