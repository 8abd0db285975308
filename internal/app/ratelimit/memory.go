package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is a single-process fixed-window limiter for development and
// tests. Not shared across instances; use the Redis limiter in production.
type MemoryLimiter struct {
	mu      sync.Mutex
	cfg     Config
	windows map[string]*window
	now     func() time.Time
}

type window struct {
	start time.Time
	count int
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.cfg.Window {
		l.windows[key] = &window{start: now, count: 1}
		return true, nil
	}
	w.count++
	return w.count <= l.cfg.Limit, nil
}
