package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker is the in-process SessionLocker used when redis is
// disabled and in tests. Lock expiry honors the TTL so a crashed request
// cannot wedge a session forever.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]time.Time
}

// NewMemoryLocker creates the in-process locker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]time.Time)}
}

var _ SessionLocker = (*MemoryLocker)(nil)

// AcquireLock takes the per-session lock unless an unexpired holder exists.
func (m *MemoryLocker) AcquireLock(_ context.Context, sessionID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if expiry, held := m.locks[sessionID]; held && now.Before(expiry) {
		return false, nil
	}
	m.locks[sessionID] = now.Add(ttl)
	return true, nil
}

// ReleaseLock frees the per-session lock.
func (m *MemoryLocker) ReleaseLock(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, sessionID)
	return nil
}
