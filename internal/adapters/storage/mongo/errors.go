package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jsamuelsen11/usertask-service/internal/domain"
)

// translateError maps a driver error to a domain error. Errors that already
// carry a domain kind pass through unchanged.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidReference), errors.Is(err, domain.ErrStorageFailure):
		return err
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidReference)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageFailure, err)
	}
}

func missing(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrInvalidReference, kind, id)
}
