package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureIndexes creates the indexes backing ListForUser and
// UsersForTaskList. Existing indexes are left alone.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	collections := map[*mongo.Collection][]mongo.IndexModel{
		s.taskLists: {
			{Keys: bson.D{{Key: fieldOwnerID, Value: 1}, {Key: fieldCreationDate, Value: 1}}},
			{Keys: bson.D{{Key: fieldAttachedUsers, Value: 1}, {Key: fieldCreationDate, Value: 1}}},
		},
		s.users: {
			{Keys: bson.D{{Key: fieldAttachedTaskLists, Value: 1}}},
		},
	}

	for coll, indexes := range collections {
		if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("creating indexes for %s: %w", coll.Name(), err)
		}
	}
	return nil
}
