package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customer-notifier/internal/model"
)

const cachedRecordTimeToLive = 10 * time.Minute

// RecordCache keeps recently read customer records in front of the
// repository. FindByID returns (nil, nil) on a miss.
type RecordCache interface {
	FindByID(ctx context.Context, id string) (*model.CustomerRecord, error)
	Cache(ctx context.Context, rec *model.CustomerRecord) error
	EvictByID(ctx context.Context, id string) error
}

type redisRecordCache struct {
	client *redis.Client
	codec  Codec
}

func NewRedisRecordCache(client *redis.Client, codec Codec) RecordCache {
	return &redisRecordCache{client: client, codec: codec}
}

func (r *redisRecordCache) FindByID(ctx context.Context, id string) (*model.CustomerRecord, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return r.codec.Decode(res)
}

func (r *redisRecordCache) Cache(ctx context.Context, rec *model.CustomerRecord) error {
	encoded, err := r.codec.Encode(rec)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key(rec.ID), encoded, cachedRecordTimeToLive).Err(); err != nil {
		return err
	}
	return nil
}

func (r *redisRecordCache) EvictByID(ctx context.Context, id string) error {
	if _, err := r.client.Del(ctx, r.key(id)).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisRecordCache) key(id string) string {
	return fmt.Sprintf("customer-record:%s", id)
}
