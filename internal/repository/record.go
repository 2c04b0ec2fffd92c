package repository

import (
	"context"

	"github.com/umalmyha/customer-notifier/internal/model"
)

// CustomerRecordRepository persists the per-customer change-detection
// baseline. FindByID returns (nil, nil) when no record exists. Upsert has
// full-overwrite semantics, DeleteByID is idempotent. The store serializes
// writes per key, last write wins - no further guarantees are required.
type CustomerRecordRepository interface {
	FindByID(ctx context.Context, id string) (*model.CustomerRecord, error)
	Upsert(ctx context.Context, rec *model.CustomerRecord) error
	DeleteByID(ctx context.Context, id string) error
}
