package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"goyard/config"
	"goyard/internal/pkg/cache"
	"goyard/internal/pkg/database"
	"goyard/internal/pkg/logger"
	"goyard/internal/repository/statsrepo"
	"goyard/internal/repository/warehouserepo"
	"goyard/internal/repository/yardrepo"
	"goyard/internal/seed"
)

// Uso: migrate [-dir ./sql] <comando goose> [args] | migrate seed
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	cfg := config.LoadConfig()

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.Parse()

	// Em desenvolvimento a saída é lida no terminal.
	logFormat := cfg.LogFormat
	if cfg.IsDevelopment() {
		logFormat = "console"
	}
	appLog, err := logger.NewLogger(cfg.LogLevel, logFormat)
	if err != nil {
		log.Fatalf("migrate: falha ao inicializar logger: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, appLog)
	if err != nil {
		log.Fatalf("migrate: falha ao conectar ao DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("migrate: falha ao fechar o DB: %v", err)
		}
	}()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]

	if command == "seed" {
		// O seed grava direto nos repositórios; o cache de estatísticas precisa ser descartado aqui.
		var cacheClient cache.Client = cache.NoopClient{}
		if cfg.RedisAddr != "" {
			if redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr); err != nil {
				appLog.Warn("Redis indisponível; cache de estatísticas não será invalidado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
			} else {
				cacheClient = redisClient
			}
		}
		defer cacheClient.Close()

		seeded, err := seed.Run(ctx,
			warehouserepo.NewWarehouseRepository(db, cfg.DBTimeout, appLog),
			yardrepo.NewYardRepository(db, cfg.DBTimeout, appLog),
			statsrepo.NewStatsRepository(db, cacheClient, cfg.DBTimeout, cfg.StatsCacheTTL, appLog),
			appLog)
		if err != nil {
			log.Fatalf("migrate seed: %v", err)
		}
		fmt.Printf("seed concluído (dados inseridos: %t)\n", seeded)
		return
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	goose.SetLogger(goose.NopLogger())

	if err := goose.RunContext(ctx, command, db, migrationsDir, arguments[1:]...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
