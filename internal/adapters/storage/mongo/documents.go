package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
	"github.com/jsamuelsen11/usertask-service/internal/domain/tasklist"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
)

// Field names shared by filters, updates and indexes.
const (
	fieldID                = "_id"
	fieldName              = "name"
	fieldOwnerID           = "ownerId"
	fieldCreationDate      = "creationDate"
	fieldTasks             = "tasks"
	fieldAttachedUsers     = "attachedUsers"
	fieldUsername          = "username"
	fieldAttachedTaskLists = "attachedTaskLists"
)

// taskListDoc is the stored shape of a task list.
type taskListDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Name          string        `bson:"name"`
	OwnerID       string        `bson:"ownerId"`
	CreationDate  time.Time     `bson:"creationDate"`
	Tasks         []string      `bson:"tasks"`
	AttachedUsers []string      `bson:"attachedUsers"`
}

// userDoc is the stored shape of a user.
type userDoc struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	Username          string        `bson:"username"`
	AttachedTaskLists []string      `bson:"attachedTaskLists"`
}

// toTaskListDoc never stores null arrays.
func toTaskListDoc(l *tasklist.TaskList) taskListDoc {
	doc := taskListDoc{
		Name:          l.Name,
		OwnerID:       l.OwnerID,
		CreationDate:  l.CreationDate.UTC(),
		Tasks:         l.Tasks,
		AttachedUsers: tasklist.Normalize(l.AttachedUsers),
	}
	if doc.Tasks == nil {
		doc.Tasks = []string{}
	}
	return doc
}

func (d *taskListDoc) toDomain() *tasklist.TaskList {
	l := &tasklist.TaskList{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		OwnerID:       d.OwnerID,
		CreationDate:  d.CreationDate.UTC(),
		Tasks:         d.Tasks,
		AttachedUsers: d.AttachedUsers,
	}
	if l.Tasks == nil {
		l.Tasks = []string{}
	}
	if l.AttachedUsers == nil {
		l.AttachedUsers = []string{}
	}
	return l
}

func (d *taskListDoc) toSummary() tasklist.Summary {
	return tasklist.Summary{ID: d.ID.Hex(), Name: d.Name}
}

func (d *userDoc) toSummary() user.Summary {
	return user.Summary{ID: d.ID.Hex(), Username: d.Username}
}

// parseID converts a hex id. A malformed id cannot reference anything, so
// it is reported as an invalid reference.
func parseID(kind, id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %s %q", domain.ErrInvalidReference, kind, id)
	}
	return oid, nil
}
