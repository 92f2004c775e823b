package session

import (
	"context"
	"sync"
	"time"

	"leftover-chef/internal/core/suggest"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryStore 程序內會話存放，單機開發與 Redis 不可用時的退路
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// memoryEntry 會話條目
type memoryEntry struct {
	pairs     []suggest.Pair
	expiresAt time.Time
}

// NewMemoryStore 創建記憶體會話存放
// ttl 為 0 表示條目不過期
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}

	// 啟動清理過期條目的協程
	if ttl > 0 {
		go m.startCleanup()
	}

	return m
}

// Get 讀取會話的食材清單
func (m *MemoryStore) Get(ctx context.Context, sessionID string) ([]suggest.Pair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if m.ttl > 0 && time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	// 複製一份，避免呼叫端改動內部狀態
	pairs := make([]suggest.Pair, len(entry.pairs))
	copy(pairs, entry.pairs)
	return pairs, nil
}

// Set 整份覆寫會話的食材清單（last-write-wins）
func (m *MemoryStore) Set(ctx context.Context, sessionID string, pairs []suggest.Pair) error {
	stored := make([]suggest.Pair, len(pairs))
	copy(stored, pairs)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sessionID] = memoryEntry{
		pairs:     stored,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

// Close 實現 Store 介面，記憶體存放沒有資源要釋放
func (m *MemoryStore) Close() error {
	return nil
}

// startCleanup 定期清除過期條目
func (m *MemoryStore) startCleanup() {
	ticker := time.NewTicker(memoryCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		m.mu.Lock()
		for id, entry := range m.entries {
			if now.After(entry.expiresAt) {
				delete(m.entries, id)
			}
		}
		m.mu.Unlock()
	}
}
