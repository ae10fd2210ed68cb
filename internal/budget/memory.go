package budget

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	now    Clock
	window time.Duration

	mu          sync.Mutex
	counts      map[string]int
	windowStart time.Time
}

type MemoryOption func(*Memory)

func WithClock(now Clock) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

func WithWindow(d time.Duration) MemoryOption {
	return func(m *Memory) {
		if d > 0 {
			m.window = d
		}
	}
}

// NewMemory creates a Memory store whose first window starts now.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		now:    time.Now,
		window: DefaultWindow,
		counts: make(map[string]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.windowStart = m.now()
	return m
}

func (m *Memory) Allow(_ context.Context, key string, limit int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetIfElapsed()
	if m.counts[key] >= limit {
		return false, nil
	}
	m.counts[key]++
	return true, nil
}

// count returns the number of requests admitted for key in the current
// window.
func (m *Memory) count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetIfElapsed()
	return m.counts[key]
}

func (m *Memory) resetIfElapsed() {
	now := m.now()
	if now.Sub(m.windowStart) > m.window {
		clear(m.counts)
		m.windowStart = now
	}
}
