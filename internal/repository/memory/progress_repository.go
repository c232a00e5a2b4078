package memory

import (
	"context"

	"bondify-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type progressRepository struct {
	cache *cache.Cache
}

// NewProgressRepository keeps progress for the life of the process. Entries
// never expire.
func NewProgressRepository() contract.ProgressRepository {
	return &progressRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *progressRepository) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := r.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *progressRepository) Set(_ context.Context, key, value string) error {
	r.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (r *progressRepository) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		r.cache.Delete(k)
	}
	return nil
}
