package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// CacheStore 评分与推荐结果的缓存接口
// ttl为0表示永不过期；Get对缺失和过期条目都返回false
type CacheStore interface {
	Get(ctx context.Context, namespace, key string, out interface{}) (bool, error)
	Set(ctx context.Context, namespace, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error
}

// cacheEntry 单条缓存记录
type cacheEntry struct {
	Data      json.RawMessage `json:"data"`
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"` // 为空表示永不过期
}

// FileCache 基于FileStore的缓存实现，整个缓存持久化为一个JSON文档
// 重启后缓存仍然有效，符合按内容指纹寻址的语义
type FileCache struct {
	store    *FileStore
	filename string

	mu      sync.RWMutex
	entries map[string]map[string]cacheEntry // namespace -> key -> entry
	now     func() time.Time
}

var _ CacheStore = (*FileCache)(nil)

// NewFileCache 创建文件缓存并加载已有内容
func NewFileCache(store *FileStore, filename string) (*FileCache, error) {
	c := &FileCache{
		store:    store,
		filename: filename,
		entries:  make(map[string]map[string]cacheEntry),
		now:      time.Now,
	}
	if err := store.Load(filename, &c.entries); err != nil {
		return nil, err
	}
	if c.entries == nil {
		c.entries = make(map[string]map[string]cacheEntry)
	}
	return c, nil
}

// Get 查找缓存，命中且未过期时反序列化到out并返回true
func (c *FileCache) Get(_ context.Context, namespace, key string, out interface{}) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[namespace][key]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if entry.ExpiresAt != nil && c.now().After(*entry.ExpiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入缓存并立即持久化
func (c *FileCache) Set(_ context.Context, namespace, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	entry := cacheEntry{Data: data, StoredAt: c.now()}
	if ttl > 0 {
		expires := entry.StoredAt.Add(ttl)
		entry.ExpiresAt = &expires
	}

	c.mu.Lock()
	if c.entries[namespace] == nil {
		c.entries[namespace] = make(map[string]cacheEntry)
	}
	c.entries[namespace][key] = entry
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	return c.store.Save(c.filename, snapshot)
}

// Delete 删除一条缓存并持久化
func (c *FileCache) Delete(_ context.Context, namespace, key string) error {
	c.mu.Lock()
	if ns, ok := c.entries[namespace]; ok {
		delete(ns, key)
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	return c.store.Save(c.filename, snapshot)
}

// snapshotLocked 复制当前缓存内容，调用方需持有写锁
func (c *FileCache) snapshotLocked() map[string]map[string]cacheEntry {
	snapshot := make(map[string]map[string]cacheEntry, len(c.entries))
	for ns, keys := range c.entries {
		m := make(map[string]cacheEntry, len(keys))
		for k, e := range keys {
			m[k] = e
		}
		snapshot[ns] = m
	}
	return snapshot
}
