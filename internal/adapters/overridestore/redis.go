package overridestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dms:rate_overrides:"

// RedisStore keeps each owner's overrides in one hash, field = pair key,
// value = JSON-encoded override. Overrides have no TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ConnectRedis parses a redis:// URL, connects and pings.
func ConnectRedis(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Info("Connected to Redis", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))
	return client, nil
}

var _ portsrepo.ExchangeRateOverrideStore = (*RedisStore)(nil)

func ownerKey(ownerID string) string {
	return keyPrefix + ownerID
}

func (s *RedisStore) GetOverride(ctx context.Context, ownerID string, pair domain.RatePair) (*domain.ExchangeRateOverride, error) {
	raw, err := s.client.HGet(ctx, ownerKey(ownerID), pair.Key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFoundError("no override for " + pair.Key())
		}
		return nil, fmt.Errorf("failed to read override %s: %w", pair.Key(), err)
	}

	var o domain.ExchangeRateOverride
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("corrupt override %s: %w", pair.Key(), err)
	}
	return &o, nil
}

func (s *RedisStore) SetOverride(ctx context.Context, ownerID string, override domain.ExchangeRateOverride) error {
	raw, err := json.Marshal(override)
	if err != nil {
		return fmt.Errorf("failed to encode override: %w", err)
	}
	if err := s.client.HSet(ctx, ownerKey(ownerID), override.Pair().Key(), raw).Err(); err != nil {
		return fmt.Errorf("failed to store override %s: %w", override.Pair().Key(), err)
	}
	return nil
}

func (s *RedisStore) ClearOverride(ctx context.Context, ownerID string, pair domain.RatePair) error {
	removed, err := s.client.HDel(ctx, ownerKey(ownerID), pair.Key()).Result()
	if err != nil {
		return fmt.Errorf("failed to clear override %s: %w", pair.Key(), err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError("no override for " + pair.Key())
	}
	return nil
}

// ListOverrides returns the owner's overrides ordered by pair key. Entries that
// fail to decode are skipped.
func (s *RedisStore) ListOverrides(ctx context.Context, ownerID string) ([]domain.ExchangeRateOverride, error) {
	fields, err := s.client.HGetAll(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	list := make([]domain.ExchangeRateOverride, 0, len(fields))
	for field, raw := range fields {
		var o domain.ExchangeRateOverride
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			slog.Default().Warn("Skipping corrupt override", slog.String("owner_id", ownerID), slog.String("pair", field))
			continue
		}
		list = append(list, o)
	}
	sortByPair(list)
	return list, nil
}
