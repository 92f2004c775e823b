package session

import (
	"context"
	"fmt"

	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisKeyPrefix = "leftoverchef:session:"

// RedisStore Redis 會話存放
type RedisStore struct {
	client *redis.Client
	config *config.SessionConfig
}

// NewRedisStore 創建 Redis 會話存放
func NewRedisStore(cfg *config.SessionConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis session store connected",
		zap.String("addr", cfg.RedisAddr),
	)

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 讀取會話的食材清單
func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]suggest.Pair, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var pairs []suggest.Pair
	if err := common.ParseJSON(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return pairs, nil
}

// Set 整份覆寫會話的食材清單
func (s *RedisStore) Set(ctx context.Context, sessionID string, pairs []suggest.Pair) error {
	data, err := common.ToJSON(pairs)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sessionID, data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
