package persistence

import (
	"context"
	"errors"
	"sync"
)

// ErrInjectedFailure is returned by a MemoryAdapter that has been told to fail.
var ErrInjectedFailure = errors.New("memory adapter: injected failure")

// MemoryAdapter keeps collections in process memory.
type MemoryAdapter struct {
	mu       sync.Mutex
	data     map[string][]byte
	failing  bool
	failNext int
	sets     int
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: make(map[string][]byte)}
}

func (m *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail() {
		return nil, ErrInjectedFailure
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryAdapter) Set(_ context.Context, entries ...Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail() {
		return ErrInjectedFailure
	}
	for _, e := range entries {
		m.data[e.Key] = append([]byte(nil), e.Value...)
	}
	m.sets++
	return nil
}

func (m *MemoryAdapter) Close() error { return nil }

// SetFailing makes every subsequent call fail until cleared.
func (m *MemoryAdapter) SetFailing(failing bool) {
	m.mu.Lock()
	m.failing = failing
	m.mu.Unlock()
}

// FailNext makes the next n calls fail.
func (m *MemoryAdapter) FailNext(n int) {
	m.mu.Lock()
	m.failNext = n
	m.mu.Unlock()
}

// SetCount reports how many Set calls have committed.
func (m *MemoryAdapter) SetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

func (m *MemoryAdapter) shouldFail() bool {
	if m.failing {
		return true
	}
	if m.failNext > 0 {
		m.failNext--
		return true
	}
	return false
}
