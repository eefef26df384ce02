package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/tracing"
)

// 为Redis操作定义专用tracer
var redisTracer = otel.Tracer("resume-screening/storage/redis")

// RedisCache 基于Redis的缓存后端，值按JSON序列化
type RedisCache struct {
	Client *redis.Client
	cfg    *config.RedisConfig
}

var _ CacheStore = (*RedisCache)(nil)

// NewRedisCache 连接Redis并验证连通性
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (*RedisCache, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("Redis地址未配置")
	}

	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeoutSeconds > 0 {
		opts.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		opts.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		opts.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接Redis %s 失败: %w", cfg.Address, err)
	}
	return &RedisCache{Client: client, cfg: cfg}, nil
}

// cacheKey 统一的键格式: 命名空间:键
func cacheKey(namespace, key string) string {
	return namespace + ":" + key
}

// Get 查找缓存，命中时反序列化到out并返回true
func (r *RedisCache) Get(ctx context.Context, namespace, key string, out interface{}) (bool, error) {
	ctx, span := redisTracer.Start(ctx, "RedisCache.Get")
	defer span.End()
	span.SetAttributes(attribute.String("cache.namespace", namespace))

	data, err := r.Client.Get(ctx, cacheKey(namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		tracing.RecordError(span, err, tracing.ErrorTypeCache)
		return false, fmt.Errorf("读取缓存失败: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入缓存，ttl为0时不设过期
func (r *RedisCache) Set(ctx context.Context, namespace, key string, v interface{}, ttl time.Duration) error {
	ctx, span := redisTracer.Start(ctx, "RedisCache.Set")
	defer span.End()
	span.SetAttributes(attribute.String("cache.namespace", namespace))

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.Client.Set(ctx, cacheKey(namespace, key), data, ttl).Err(); err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeCache)
		return fmt.Errorf("写入缓存失败: %w", err)
	}
	return nil
}

// Delete 删除一条缓存
func (r *RedisCache) Delete(ctx context.Context, namespace, key string) error {
	return r.Client.Del(ctx, cacheKey(namespace, key)).Err()
}

// Close 关闭Redis连接
func (r *RedisCache) Close() error {
	return r.Client.Close()
}
