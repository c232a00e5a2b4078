package implementation

import (
	"context"

	"bondify-be/internal/repository/contract"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type progressRedisRepository struct {
	rdb    *redis.Client
	prefix string
}

// NewProgressRedisRepository stores each key as a plain Redis string under
// prefix.
func NewProgressRedisRepository(rdb *redis.Client, prefix string) contract.ProgressRepository {
	return &progressRedisRepository{rdb: rdb, prefix: prefix}
}

func (r *progressRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (r *progressRedisRepository) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (r *progressRedisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	if err := r.rdb.Del(ctx, full...).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}
