// Package mongo implements ports.TaskListRepository on MongoDB. Every write
// that touches both collections runs in one multi-document transaction, so
// the deployment must be a replica set or sharded cluster.
package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/jsamuelsen11/usertask-service/internal/platform/config"
	"github.com/jsamuelsen11/usertask-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskListRepository = (*Store)(nil)
	_ ports.HealthChecker      = (*Store)(nil)
)

// Store is the MongoDB task-list repository.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	taskLists *mongo.Collection
	logger    *slog.Logger
}

// Connect opens a client, verifies it with a ping and, when configured,
// creates the indexes the queries rely on.
func Connect(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	s := New(client, cfg, logger)

	if cfg.EnsureIndexes {
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "connected to mongodb",
		slog.String("database", cfg.Database),
		slog.String("users_collection", cfg.UsersCollection),
		slog.String("task_lists_collection", cfg.TaskListsCollection),
	)
	return s, nil
}

// New builds a Store on an existing client.
func New(client *mongo.Client, cfg *config.MongoConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	db := client.Database(cfg.Database)
	return &Store{
		client:    client,
		users:     db.Collection(cfg.UsersCollection),
		taskLists: db.Collection(cfg.TaskListsCollection),
		logger:    logger,
	}
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name returns the identifier used when registering with a
// ports.HealthRegistry.
func (s *Store) Name() string {
	return "mongodb"
}

// HealthCheck pings the primary.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}
	return nil
}
