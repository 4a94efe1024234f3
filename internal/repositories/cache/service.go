package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lexofis/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService is a JSON-over-Redis read cache. Stored calculations are
// immutable once written, so cached copies can never go stale other than
// by deletion, which invalidates explicitly.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}

func calculationKey(id uuid.UUID) string {
	return fmt.Sprintf("calculation:id:%s", id)
}

// CacheCalculation stores one calculation under its id key.
func (s *CacheService) CacheCalculation(ctx context.Context, calc *models.StoredCalculation) error {
	return s.Set(ctx, calculationKey(calc.ID), calc)
}

// GetCalculation fetches a cached calculation; found is false on a miss.
func (s *CacheService) GetCalculation(ctx context.Context, id uuid.UUID) (*models.StoredCalculation, bool, error) {
	var calc models.StoredCalculation
	found, err := s.Get(ctx, calculationKey(id), &calc)
	if err != nil || !found {
		return nil, false, err
	}
	return &calc, true, nil
}

// InvalidateCalculation drops a calculation from the cache.
func (s *CacheService) InvalidateCalculation(ctx context.Context, id uuid.UUID) error {
	return s.Delete(ctx, calculationKey(id))
}
