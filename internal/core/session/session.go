// Package session 保存使用者在表單間往返的食材清單
// 核心只把它當黑盒：讀取、整份覆寫（last-write-wins），沒有其他語義
package session

import (
	"context"

	"leftover-chef/internal/core/suggest"
	"leftover-chef/internal/infrastructure/config"
	"leftover-chef/internal/pkg/common"

	"go.uber.org/zap"
)

// Store 會話狀態存取介面
type Store interface {
	// Get 讀取會話的食材清單，不存在時回傳空清單
	Get(ctx context.Context, sessionID string) ([]suggest.Pair, error)
	// Set 整份覆寫會話的食材清單
	Set(ctx context.Context, sessionID string, pairs []suggest.Pair) error
	// Close 釋放底層資源
	Close() error
}

// NewStore 依設定建立會話存放
// 設定了 Redis 就用 Redis，連不上或未設定時退回程序內記憶體存放
func NewStore(cfg *config.SessionConfig) Store {
	if cfg == nil || !cfg.Enabled {
		common.LogInfo("Session store disabled, using in-memory store")
		return NewMemoryStore(0)
	}

	if cfg.RedisAddr != "" {
		s, err := NewRedisStore(cfg)
		if err == nil {
			return s
		}
		common.LogWarn("Redis session store unavailable, falling back to in-memory",
			zap.Error(err),
			zap.String("addr", cfg.RedisAddr),
		)
	}

	return NewMemoryStore(cfg.TTL)
}
