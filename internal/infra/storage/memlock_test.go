package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockerExclusive(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	ok, err := locker.AcquireLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = locker.AcquireLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different session is unaffected.
	ok, err = locker.AcquireLock(ctx, "sess-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLockerReleaseAllowsReacquire(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	ok, err := locker.AcquireLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, locker.ReleaseLock(ctx, "sess-1"))

	ok, err = locker.AcquireLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLockerExpiry(t *testing.T) {
	locker := NewMemoryLocker()
	ctx := context.Background()

	ok, err := locker.AcquireLock(ctx, "sess-1", time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(5 * time.Millisecond)

	ok, err = locker.AcquireLock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
