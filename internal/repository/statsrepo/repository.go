package statsrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"goyard/internal/domain"
	"goyard/internal/errors"
	"goyard/internal/pkg/cache"
	"goyard/internal/pkg/logger"
)

// statsCacheKey é a chave única dos contadores do painel no Redis.
const statsCacheKey = "stats:system"

// StatsRepository calcula os contadores do painel com cache-aside no Redis.
type StatsRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewStatsRepository cria o repositório. cacheClient pode ser um cache.NoopClient.
func NewStatsRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *StatsRepository {
	return &StatsRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetSystemStats devolve os contadores. Cada contador vem de uma consulta independente.
func (r *StatsRepository) GetSystemStats(ctx context.Context) (domain.SystemStats, error) {
	var stats domain.SystemStats

	// Cache-Aside (READ): falhas do Redis não impedem a consulta ao banco.
	cached, err := r.Cache.Get(ctx, statsCacheKey)
	if err == nil {
		if json.Unmarshal([]byte(cached), &stats) == nil {
			r.logger.Debug("Estatísticas servidas do cache.", nil)
			return stats, nil
		}
		r.logger.Warn("Entrada de cache de estatísticas corrompida.", map[string]interface{}{"key": statsCacheKey})
	} else if err != cache.ErrCacheMiss {
		r.logger.Warn("Falha ao ler estatísticas do cache.", map[string]interface{}{"error": err.Error()})
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	counters := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM warehouses`, &stats.TotalWarehouses},
		{`SELECT COUNT(*) FROM yards`, &stats.TotalYards},
		{`SELECT COUNT(*) FROM warehouses WHERE status = 'active'`, &stats.ActiveWarehouses},
		{`SELECT COUNT(*) FROM yards WHERE status = 'active'`, &stats.ActiveYards},
	}
	for _, c := range counters {
		if err := r.DB.QueryRowContext(ctxTimeout, c.query).Scan(c.dest); err != nil {
			r.logger.Error("Falha ao calcular estatísticas no DB.", err)
			return domain.SystemStats{}, errors.NewDBError("Falha ao calcular estatísticas", err)
		}
	}

	// Cache-Aside (WRITE)
	if payload, err := json.Marshal(stats); err == nil {
		if err := r.Cache.Set(ctx, statsCacheKey, payload, r.CacheTTL); err != nil {
			r.logger.Warn("Falha ao gravar estatísticas no cache.", map[string]interface{}{"error": err.Error()})
		}
	}

	r.logger.Info("Estatísticas calculadas.", map[string]interface{}{
		"total_warehouses": stats.TotalWarehouses,
		"total_yards":      stats.TotalYards,
	})
	return stats, nil
}

// Invalidate descarta os contadores em cache. Chamado após toda escrita bem-sucedida.
func (r *StatsRepository) Invalidate(ctx context.Context) {
	if err := r.Cache.Delete(ctx, statsCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar cache de estatísticas.", map[string]interface{}{"error": err.Error()})
	}
}
