package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Infraestrutura e utilitários
	"goyard/config"
	"goyard/internal/pkg/cache"
	"goyard/internal/pkg/database"
	"goyard/internal/pkg/logger"
	"goyard/internal/pkg/metrics"

	// Camadas para Injeção de Dependências
	"goyard/internal/api/report"
	"goyard/internal/api/router"
	"goyard/internal/api/stats"
	"goyard/internal/api/warehouse"
	"goyard/internal/api/yard"
	"goyard/internal/repository/statsrepo"
	"goyard/internal/repository/warehouserepo"
	"goyard/internal/repository/yardrepo"
	"goyard/internal/service/reportservice"
	"goyard/internal/service/statsservice"
	"goyard/internal/service/warehouseservice"
	"goyard/internal/service/yardservice"
)

func main() {
	// 0. Variáveis de ambiente (.env é opcional; em contêiner vêm do sistema)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e logger
	cfg := config.LoadConfig()
	appLog, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ Falha ao inicializar logger: %v", err)
	}
	if syncer, ok := appLog.(interface{ Sync() error }); ok {
		defer syncer.Sync()
	}
	appLog.Info("⚡ Inicializando serviço GoYard...", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// 2. Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, appLog)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()

	// B. Cache (Redis). Sem Redis a API continua funcionando, apenas sem cache e sem rate limit.
	var cacheClient cache.Client = cache.NoopClient{}
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Warn("Redis indisponível; seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			cacheClient = redisClient
			appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}
	defer cacheClient.Close()

	// 3. Injeção de dependências: Repository -> Service -> Handler
	statsRepo := statsrepo.NewStatsRepository(db, cacheClient, cfg.DBTimeout, cfg.StatsCacheTTL, appLog)
	warehouseRepo := warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, appLog)
	yardRepo := yardrepo.NewYardRepository(db, cfg.DBTimeout, appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	statsSvc := statsservice.NewService(statsRepo, appLog)
	warehouseSvc := warehouseservice.NewService(warehouseRepo, statsRepo, appLog)
	yardSvc := yardservice.NewService(yardRepo, statsRepo, appLog)
	reportSvc := reportservice.NewService(reportservice.NewSource(warehouseSvc, yardSvc, statsSvc), appLog)
	appLog.Debug("Serviços inicializados.", nil)

	handler, err := router.NewRouter(router.Handlers{
		Warehouse: warehouse.NewHandler(warehouseSvc, appLog),
		Yard:      yard.NewHandler(yardSvc, appLog),
		Stats:     stats.NewHandler(statsSvc, appLog),
		Report:    report.NewHandler(reportSvc, appLog),
	}, router.Options{
		Logger:          appLog,
		Metrics:         metrics.New(),
		Cache:           cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
		CORSOrigin:      cfg.CORSAllowedOrigin,
	})
	if err != nil {
		appLog.Fatal("Falha ao montar o roteador.", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoYard ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
