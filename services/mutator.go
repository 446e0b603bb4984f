package services

import (
	"context"

	"OptiCare360/models"
)

// Mutator is the mutation surface the services depend on. The production
// implementation is the gateway; tests substitute a recording fake.
type Mutator interface {
	Save(ctx context.Context, collection string, record models.Record, existingID string) (string, error)
	RequestDelete(collection, id string) (string, error)
	ConfirmDelete(ctx context.Context, token string) error
}
