package adapters

import (
	"context"
	"sync"
	"testing"

	"courier-tracker/internal/features/consignments/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounter(t *testing.T) (*RedisCounter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	counter, err := NewRedisCounter(client, domain.DefaultSequenceKey)
	require.NoError(t, err)
	return counter, mr
}

func TestNewRedisCounter_EmptyKey(t *testing.T) {
	_, err := NewRedisCounter(nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidKey)
}

func TestRedisCounter_AllocateRaisesToFloor(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()
	mr.HSet("sequence:global", "currentNumber", "4")

	next, err := counter.Allocate(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(10), next)
	assert.Equal(t, "10", mr.HGet("sequence:global", "currentNumber"))
}

func TestRedisCounter_AllocateKeepsHigherCounter(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()
	mr.HSet("sequence:global", "currentNumber", "1000050")

	next, err := counter.Allocate(ctx, 1000000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000051), next)
}

func TestRedisCounter_AllocateFromEmpty(t *testing.T) {
	counter, _ := newTestCounter(t)
	ctx := context.Background()

	first, err := counter.Allocate(ctx, 1000000)
	require.NoError(t, err)
	second, err := counter.Allocate(ctx, 1000000)
	require.NoError(t, err)

	assert.Equal(t, int64(1000001), first)
	assert.Equal(t, int64(1000002), second)
}

func TestRedisCounter_ConcurrentAllocationsAreUnique(t *testing.T) {
	counter, _ := newTestCounter(t)
	ctx := context.Background()
	const n = 50

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]struct{}, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next, err := counter.Allocate(ctx, 1000)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			seen[next] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	for id := range seen {
		assert.Greater(t, id, int64(1000))
	}
}

func TestRedisCounter_Current(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	current, err := counter.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)

	mr.HSet("sequence:global", "currentNumber", "42")
	current, err = counter.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), current)
}

func TestRedisCounter_StoreUnavailable(t *testing.T) {
	counter, mr := newTestCounter(t)
	mr.Close()

	_, err := counter.Allocate(context.Background(), 1)
	assert.Error(t, err)
}
