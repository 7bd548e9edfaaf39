package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goyard/internal/pkg/cache"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *cache.RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisClient_GetSetDelete(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	_, err := client.Get(ctx, "stats:system")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	require.NoError(t, client.Set(ctx, "stats:system", `{"totalWarehouses":2}`, time.Minute))

	val, err := client.Get(ctx, "stats:system")
	require.NoError(t, err)
	assert.Equal(t, `{"totalWarehouses":2}`, val)

	require.NoError(t, client.Delete(ctx, "stats:system"))
	_, err = client.Get(ctx, "stats:system")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	// Remover uma chave inexistente não é erro.
	assert.NoError(t, client.Delete(ctx, "stats:system"))
}

func TestRedisClient_SetExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", 10*time.Second))
	mr.FastForward(11 * time.Second)

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestRedisClient_IncrSetsTTLOnFirstHit(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	count, err := client.Incr(ctx, "rate-limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, mr.TTL("rate-limit:10.0.0.1"))

	count, err = client.Incr(ctx, "rate-limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	mr.FastForward(time.Minute + time.Second)
	count, err = client.Incr(ctx, "rate-limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisClient_IncrKeepsWindowAndRepairsMissingTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	_, err := client.Incr(ctx, "rate-limit:10.0.0.2", time.Minute)
	require.NoError(t, err)
	mr.FastForward(20 * time.Second)
	_, err = client.Incr(ctx, "rate-limit:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Second, mr.TTL("rate-limit:10.0.0.2"))

	// Contador que ficou sem expiração volta a expirar no próximo incremento.
	require.NoError(t, mr.Set("rate-limit:10.0.0.3", "7"))
	count, err := client.Incr(ctx, "rate-limit:10.0.0.3", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)
	assert.Equal(t, time.Minute, mr.TTL("rate-limit:10.0.0.3"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := cache.NewRedisClient(context.Background(), addr)
	assert.Error(t, err)
}

func TestNoopClient(t *testing.T) {
	var c cache.Client = cache.NoopClient{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	_, err = c.Incr(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, cache.ErrCacheDisabled)
}
