package repository

import (
	"context"
	"sync"
	"time"

	"github.com/umalmyha/customer-notifier/internal/model"
)

// inMemoryCustomerRecordRepository is the zero-configuration store driver.
// It also backs the repository contract tests.
type inMemoryCustomerRecordRepository struct {
	mu      sync.RWMutex
	records map[string]model.CustomerRecord
}

func NewInMemoryCustomerRecordRepository() CustomerRecordRepository {
	return &inMemoryCustomerRecordRepository{records: make(map[string]model.CustomerRecord)}
}

func (repo *inMemoryCustomerRecordRepository) FindByID(_ context.Context, id string) (*model.CustomerRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rec, ok := repo.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (repo *inMemoryCustomerRecordRepository) Upsert(_ context.Context, rec *model.CustomerRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored := *rec
	stored.UpdatedAt = time.Now().UTC()
	repo.records[rec.ID] = stored
	return nil
}

func (repo *inMemoryCustomerRecordRepository) DeleteByID(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.records, id)
	return nil
}
