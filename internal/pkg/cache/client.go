package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato de interface para qualquer serviço de cache que o Repositório possa usar.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// incrScript incrementa e aplica o TTL na mesma operação; uma chave sem TTL
// (e.g., de um EXPIRE que falhou antes) recebe o TTL no próximo incremento.
var incrScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
local ttl = tonumber(ARGV[1])
if ttl > 0 and redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return n
`)

// Incr incrementa o contador da chave. Na primeira ocorrência da janela a chave recebe o TTL.
func (c *RedisClient) Incr(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	return incrScript.Run(ctx, c.rdb, []string{key}, expiration.Milliseconds()).Int64()
}

// Close encerra o pool de conexões do Redis.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// NoopClient é usado quando REDIS_ADDR está vazio: toda leitura é um miss
// e toda escrita é descartada.
type NoopClient struct{}

func (NoopClient) Get(context.Context, string) (string, error) { return "", ErrCacheMiss }
func (NoopClient) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (NoopClient) Delete(context.Context, string) error { return nil }
func (NoopClient) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, ErrCacheDisabled
}
func (NoopClient) Close() error { return nil }
