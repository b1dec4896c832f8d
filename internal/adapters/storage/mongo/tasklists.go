package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

// CreateTaskList inserts the list and links its attached users in one
// transaction.
func (s *Store) CreateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	doc := toTaskListDoc(list)
	doc.ID = bson.NewObjectID()
	created := doc.toDomain()

	err := s.inTransaction(ctx, "create task list", func(ctx context.Context) error {
		if _, err := s.taskLists.InsertOne(ctx, doc); err != nil {
			return err
		}
		return s.applyPlan(ctx, tasklist.PlanCreate(created))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTaskList reads the stored list, syncs the users whose membership
// changed and replaces the list, all in one transaction.
func (s *Store) UpdateTaskList(ctx context.Context, list *tasklist.TaskList) (*tasklist.TaskList, error) {
	oid, err := parseID("task list", list.ID)
	if err != nil {
		return nil, err
	}

	var updated *tasklist.TaskList
	err = s.inTransaction(ctx, "update task list", func(ctx context.Context) error {
		stored, err := s.findTaskList(ctx, oid)
		if err != nil {
			return err
		}

		merged := tasklist.MergeUpdate(stored, list)
		if err := s.applyPlan(ctx, tasklist.PlanUpdate(stored, list)); err != nil {
			return err
		}

		doc := toTaskListDoc(merged)
		doc.ID = oid
		res, err := s.taskLists.ReplaceOne(ctx, bson.M{fieldID: oid}, doc)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return missing("task list", list.ID)
		}

		updated = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTaskList unlinks every attached user and deletes the list in one
// transaction.
func (s *Store) DeleteTaskList(ctx context.Context, id string) error {
	oid, err := parseID("task list", id)
	if err != nil {
		return err
	}

	return s.inTransaction(ctx, "delete task list", func(ctx context.Context) error {
		stored, err := s.findTaskList(ctx, oid)
		if err != nil {
			return err
		}
		if err := s.applyPlan(ctx, tasklist.PlanDelete(stored)); err != nil {
			return err
		}

		res, err := s.taskLists.DeleteOne(ctx, bson.M{fieldID: oid})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return missing("task list", id)
		}
		return nil
	})
}

// GetTaskList returns the full stored list.
func (s *Store) GetTaskList(ctx context.Context, id string) (*tasklist.TaskList, error) {
	oid, err := parseID("task list", id)
	if err != nil {
		return nil, err
	}

	l, err := s.findTaskList(ctx, oid)
	if err != nil {
		return nil, translateError("get task list", err)
	}
	return l, nil
}

// AttachUser adds each side to the other's set. $addToSet keeps it
// idempotent.
func (s *Store) AttachUser(ctx context.Context, userID, taskListID string) error {
	return s.setMembership(ctx, "attach user", "$addToSet", userID, taskListID)
}

// DetachUser removes each side from the other's set. Pulling an absent
// member is a no-op.
func (s *Store) DetachUser(ctx context.Context, userID, taskListID string) error {
	return s.setMembership(ctx, "detach user", "$pull", userID, taskListID)
}

// CheckPermission reports whether userID owns or is attached to the list.
func (s *Store) CheckPermission(ctx context.Context, userID, taskListID string) (bool, error) {
	l, err := s.accessView(ctx, "check permission", taskListID)
	if err != nil {
		return false, err
	}
	return l.HasAccess(userID), nil
}

// CheckOwner reports whether userID owns the list.
func (s *Store) CheckOwner(ctx context.Context, userID, taskListID string) (bool, error) {
	l, err := s.accessView(ctx, "check owner", taskListID)
	if err != nil {
		return false, err
	}
	return l.IsOwner(userID), nil
}

// ListForUser sorts server-side by creation date, breaking ties on _id,
// before skipping and limiting. Only id and name are fetched.
func (s *Store) ListForUser(ctx context.Context, query tasklist.ListQuery) ([]tasklist.Summary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	order := -1
	if query.Ascending {
		order = 1
	}

	filter := bson.M{"$or": bson.A{
		bson.M{fieldOwnerID: query.UserID},
		bson.M{fieldAttachedUsers: query.UserID},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: fieldCreationDate, Value: order}, {Key: fieldID, Value: order}}).
		SetSkip(int64(query.Skip())).
		SetLimit(int64(query.PageSize)).
		SetProjection(bson.M{fieldName: 1})

	cur, err := s.taskLists.Find(ctx, filter, opts)
	if err != nil {
		return nil, translateError("list task lists", err)
	}

	var docs []taskListDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateError("list task lists", err)
	}

	out := make([]tasklist.Summary, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toSummary())
	}
	return out, nil
}

// UsersForTaskList returns users whose attached set contains the list,
// projected to id and username.
func (s *Store) UsersForTaskList(ctx context.Context, taskListID string) ([]user.Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: fieldID, Value: 1}}).
		SetProjection(bson.M{fieldUsername: 1})

	cur, err := s.users.Find(ctx, bson.M{fieldAttachedTaskLists: taskListID}, opts)
	if err != nil {
		return nil, translateError("list task list users", err)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateError("list task list users", err)
	}

	out := make([]user.Summary, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toSummary())
	}
	return out, nil
}

// setMembership applies the same set operator to both sides of the relation
// inside one transaction. Both documents must exist.
func (s *Store) setMembership(ctx context.Context, op, operator, userID, taskListID string) error {
	listOID, err := parseID("task list", taskListID)
	if err != nil {
		return err
	}
	userOID, err := parseID("user", userID)
	if err != nil {
		return err
	}

	return s.inTransaction(ctx, op, func(ctx context.Context) error {
		res, err := s.taskLists.UpdateOne(ctx,
			bson.M{fieldID: listOID},
			bson.M{operator: bson.M{fieldAttachedUsers: userID}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return missing("task list", taskListID)
		}

		res, err = s.users.UpdateOne(ctx,
			bson.M{fieldID: userOID},
			bson.M{operator: bson.M{fieldAttachedTaskLists: taskListID}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return missing("user", userID)
		}
		return nil
	})
}

// applyPlan updates the user side of the relation. Users that cannot be
// found fail a link and are skipped by an unlink.
func (s *Store) applyPlan(ctx context.Context, plan tasklist.SyncPlan) error {
	for _, id := range plan.Unlink {
		oid, err := parseID("user", id)
		if err != nil {
			continue
		}
		if _, err := s.users.UpdateOne(ctx,
			bson.M{fieldID: oid},
			bson.M{"$pull": bson.M{fieldAttachedTaskLists: plan.TaskListID}},
		); err != nil {
			return err
		}
	}

	for _, id := range plan.Link {
		oid, err := parseID("user", id)
		if err != nil {
			return err
		}
		res, err := s.users.UpdateOne(ctx,
			bson.M{fieldID: oid},
			bson.M{"$addToSet": bson.M{fieldAttachedTaskLists: plan.TaskListID}},
		)
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return missing("user", id)
		}
	}
	return nil
}

func (s *Store) findTaskList(ctx context.Context, oid bson.ObjectID) (*tasklist.TaskList, error) {
	var doc taskListDoc
	if err := s.taskLists.FindOne(ctx, bson.M{fieldID: oid}).Decode(&doc); err != nil {
		return nil, translateError("find task list "+oid.Hex(), err)
	}
	return doc.toDomain(), nil
}

// accessView loads only the fields needed for authorization.
func (s *Store) accessView(ctx context.Context, op, taskListID string) (*tasklist.TaskList, error) {
	oid, err := parseID("task list", taskListID)
	if err != nil {
		return nil, err
	}

	opts := options.FindOne().SetProjection(bson.M{fieldOwnerID: 1, fieldAttachedUsers: 1})

	var doc taskListDoc
	if err := s.taskLists.FindOne(ctx, bson.M{fieldID: oid}, opts).Decode(&doc); err != nil {
		return nil, translateError(op, err)
	}
	return doc.toDomain(), nil
}
