package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket 令牌桶限流器，用于约束简历分析接口的吞吐
// 简历解析是全流程中最耗CPU的一步，突发上传会拖垮NLP标注
type TokenBucket struct {
	rate           float64 // 每秒生成的令牌数
	capacity       float64 // 桶的容量
	tokens         float64 // 当前令牌数
	lastRefillTime time.Time
	mutex          sync.Mutex

	now func() time.Time // 测试注入
}

// NewTokenBucket 创建一个新的令牌桶限流器
// qpm为每分钟允许的请求数；capacity<=0时取qpm的一半（至少为1）
func NewTokenBucket(qpm int, capacity int) *TokenBucket {
	if capacity <= 0 {
		capacity = qpm / 2
		if capacity <= 0 {
			capacity = 1
		}
	}

	return &TokenBucket{
		rate:           float64(qpm) / 60.0,
		capacity:       float64(capacity),
		tokens:         float64(capacity),
		lastRefillTime: time.Now(),
		now:            time.Now,
	}
}

// refill 根据经过的时间填充令牌，调用方必须持有锁
func (tb *TokenBucket) refill() {
	now := tb.now()
	elapsed := now.Sub(tb.lastRefillTime).Seconds()
	tb.lastRefillTime = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
}

// Allow 判断是否允许通过一个请求，允许时消耗一个令牌
func (tb *TokenBucket) Allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}
