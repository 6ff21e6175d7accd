package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter, mr
}

func TestRedisAdapter_GetSet(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	key := DocumentKey("tracking", "1000001")
	value := []byte(`{"status":"booked"}`)

	require.NoError(t, adapter.Set(ctx, key, value, 0))

	got, err := adapter.Get(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	_, err := adapter.Get(context.Background(), "non_existent_key")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "non_existent_key")
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "delete_test", []byte("value"), 0))
	assert.NoError(t, adapter.Delete(ctx, "delete_test"))

	_, err := adapter.Get(ctx, "delete_test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_TTL(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl_test", []byte("expires_soon"), time.Second))

	_, err := adapter.Get(ctx, "ttl_test")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl_test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_ConsignmentIndex(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	max, err := adapter.MaxConsignment(ctx, "customer")
	require.NoError(t, err)
	assert.Equal(t, int64(0), max)

	for _, n := range []int64{1000005, 1000012, 1000007} {
		require.NoError(t, adapter.IndexConsignment(ctx, "customer", n))
	}
	require.NoError(t, adapter.IndexConsignment(ctx, "medicine", 2000000))

	max, err = adapter.MaxConsignment(ctx, "customer")
	require.NoError(t, err)
	assert.Equal(t, int64(1000012), max)
}

func TestRedisAdapter_Ping(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	assert.NoError(t, adapter.Ping(context.Background()))
	assert.NotNil(t, adapter.Client())
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
