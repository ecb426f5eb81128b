package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

const (
	defaultIdleTTL    = 3 * time.Minute
	defaultPruneEvery = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// MemoryLimiter 单实例令牌桶，每个 key 一个 rate.Limiter
// 超过 idleTTL 未访问的 key 在后续调用时顺带清理
type MemoryLimiter struct {
	visitors   cmap.ConcurrentMap[string, *visitor]
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	pruneEvery time.Duration
	lastPrune  atomic.Int64
	now        func() time.Time
}

func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	m := &MemoryLimiter{
		visitors:   cmap.New[*visitor](),
		limit:      rate.Limit(rps),
		burst:      burst,
		idleTTL:    defaultIdleTTL,
		pruneEvery: defaultPruneEvery,
		now:        time.Now,
	}
	m.lastPrune.Store(m.now().UnixNano())
	return m
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()
	m.prune(now)

	v := m.visitors.Upsert(key, nil, func(exist bool, old *visitor, _ *visitor) *visitor {
		if exist {
			return old
		}
		return &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
	})
	v.lastSeen.Store(now.UnixNano())
	return v.limiter.AllowN(now, 1), nil
}

// Len 当前跟踪的 key 数量
func (m *MemoryLimiter) Len() int {
	return m.visitors.Count()
}

func (m *MemoryLimiter) prune(now time.Time) {
	last := m.lastPrune.Load()
	if now.UnixNano()-last < int64(m.pruneEvery) {
		return
	}
	if !m.lastPrune.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-m.idleTTL).UnixNano()
	for _, key := range m.visitors.Keys() {
		m.visitors.RemoveCb(key, func(_ string, v *visitor, exists bool) bool {
			return exists && v.lastSeen.Load() < cutoff
		})
	}
}
