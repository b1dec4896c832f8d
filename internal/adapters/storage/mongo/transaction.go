package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readconcern"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
)

// inTransaction runs fn inside a snapshot, majority-acknowledged transaction.
// The transaction is committed when fn returns nil and aborted otherwise.
// Transient errors are returned to the caller, never retried.
func (s *Store) inTransaction(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("%s: starting session: %w: %w", op, domain.ErrStorageFailure, err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	if err := sess.StartTransaction(txnOpts); err != nil {
		return fmt.Errorf("%s: starting transaction: %w: %w", op, domain.ErrStorageFailure, err)
	}

	sessCtx := mongo.NewSessionContext(ctx, sess)

	if err := fn(sessCtx); err != nil {
		if abortErr := sess.AbortTransaction(context.WithoutCancel(ctx)); abortErr != nil {
			s.logger.ErrorContext(ctx, "failed to abort transaction",
				slog.String("operation", op),
				slog.Any("error", abortErr),
			)
		}
		return translateError(op, err)
	}

	if err := sess.CommitTransaction(sessCtx); err != nil {
		return fmt.Errorf("%s: committing transaction: %w: %w", op, domain.ErrStorageFailure, err)
	}
	return nil
}
