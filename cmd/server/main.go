package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sportsbook-settlement/internal/cache"
	"sportsbook-settlement/internal/config"
	"sportsbook-settlement/internal/database"
	"sportsbook-settlement/internal/events"
	"sportsbook-settlement/internal/handler"
	"sportsbook-settlement/internal/logger"
	"sportsbook-settlement/internal/metrics"
	"sportsbook-settlement/internal/repository"
	"sportsbook-settlement/internal/repository/memory"
	"sportsbook-settlement/internal/repository/postgres"
	"sportsbook-settlement/internal/service"
	"sportsbook-settlement/internal/worker"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	_ "sportsbook-settlement/docs"
)

// storage bundles the repositories of one storage driver
type storage struct {
	db      repository.DBManager
	users   repository.UserRepository
	ledger  repository.LedgerRepository
	catalog repository.CatalogRepository
	close   func()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*storage, error) {
	if cfg.Driver == config.StorageDriverMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{db: store, users: store, ledger: store, catalog: store, close: func() {}}, nil
	}

	dbPool, err := database.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, err
		}
		log.Info().Msg("database schema applied")
	}

	return &storage{
		db:      postgres.NewTransactionManager(dbPool),
		users:   postgres.NewUserRepository(dbPool),
		ledger:  postgres.NewLedgerRepository(dbPool),
		catalog: postgres.NewCatalogRepository(dbPool),
		close:   dbPool.Close,
	}, nil
}

// @title Sportsbook Settlement API
// @version 1.0
// @description Settlement and ledger engine: books, outcomes, bets and the balance ledger
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, "info")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Log.Pretty, cfg.Log.Level)

	// Initialize storage
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := openStorage(dbCtx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.close()

	// Balance cache
	var balanceCache repository.BalanceCache = cache.NopBalanceCache{}
	if cfg.Redis.Addr != "" {
		rdb, err := cache.ConnectRedis(dbCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		balanceCache = cache.NewRedisBalanceCache(rdb, cfg.Redis.BalanceTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("balance cache enabled")
	}

	// Settlement events
	var publisher repository.SettlementPublisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(events.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.TopicBetSettled))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.TopicBetSettled).Msg("settlement events enabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Services
	ledgerService := service.NewLedgerService(store.users, store.ledger, store.db, balanceCache, m, log)
	processor := service.NewSettlementProcessor(store.catalog, ledgerService, publisher, m, log)
	resolver := service.NewOutcomeResolver(store.catalog, processor, m, log)
	detector := service.NewCompletionDetector(store.catalog, m, log)
	scheduler := service.NewSettlementScheduler(detector, processor, store.catalog, service.SchedulerOptions{
		Concurrency:     cfg.Scheduler.Concurrency,
		RetryAttempts:   cfg.Scheduler.RetryAttempts,
		RetryBackoff:    cfg.Scheduler.RetryBackoff,
		SettlingTimeout: cfg.Scheduler.SettlingTimeout,
		BatchSize:       cfg.Scheduler.BatchSize,
	}, m, log)
	catalogService := service.NewCatalogService(store.catalog, ledgerService, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Workers for scheduled settlement and stale claim recovery
	if cfg.Scheduler.Enabled {
		settlementWorker, err := worker.NewSettlementWorker(scheduler, cfg.Scheduler.Cron, cfg.Scheduler.SettlingTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create settlement worker")
		}
		settlementWorker.Start(ctx)
		defer settlementWorker.Stop()

		recoveryWorker := worker.NewRecoveryWorker(scheduler, cfg.Scheduler.RecoveryInterval, log)
		recoveryWorker.Start(ctx)
		defer recoveryWorker.Stop()
	}

	// http handler
	h := handler.NewHandler(ledgerService, catalogService, resolver, scheduler, cfg.Auth.CronSecret, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Str("storage", cfg.Database.Driver).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
