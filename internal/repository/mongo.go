package repository

import (
	"context"
	"errors"
	"time"

	"github.com/umalmyha/customer-notifier/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoDatabase         = "notifier"
	mongoRecordCollection = "customerRecords"
)

type mongoCustomerRecordRepository struct {
	records *mongo.Collection
}

func NewMongoCustomerRecordRepository(client *mongo.Client) CustomerRecordRepository {
	return &mongoCustomerRecordRepository{
		records: client.Database(mongoDatabase).Collection(mongoRecordCollection),
	}
}

func (repo *mongoCustomerRecordRepository) FindByID(ctx context.Context, id string) (*model.CustomerRecord, error) {
	res := repo.records.FindOne(ctx, bson.M{"_id": id})

	var rec model.CustomerRecord
	if err := res.Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (repo *mongoCustomerRecordRepository) Upsert(ctx context.Context, rec *model.CustomerRecord) error {
	stored := *rec
	stored.UpdatedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.records.ReplaceOne(ctx, bson.M{"_id": stored.ID}, &stored, opts); err != nil {
		return err
	}
	return nil
}

func (repo *mongoCustomerRecordRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := repo.records.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}
