package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AdAndRoll/movie-search-server/internal/config"
	http_init "github.com/AdAndRoll/movie-search-server/internal/delivery/http/init"
	http_preference "github.com/AdAndRoll/movie-search-server/internal/delivery/http/preference"
	http_status "github.com/AdAndRoll/movie-search-server/internal/delivery/http/status"
	http_swagger "github.com/AdAndRoll/movie-search-server/internal/delivery/http/swagger"
	infra_kinopoisk "github.com/AdAndRoll/movie-search-server/internal/infra/kinopoisk"
	infra_memory_lock "github.com/AdAndRoll/movie-search-server/internal/infra/memory/lock"
	infra_pg_init "github.com/AdAndRoll/movie-search-server/internal/infra/postgres/init"
	infra_postgres_preference "github.com/AdAndRoll/movie-search-server/internal/infra/postgres/preference"
	infra_postgres_result "github.com/AdAndRoll/movie-search-server/internal/infra/postgres/result"
	infra_postgres_session "github.com/AdAndRoll/movie-search-server/internal/infra/postgres/session"
	infra_redis_init "github.com/AdAndRoll/movie-search-server/internal/infra/redis/init"
	infra_redis_lock "github.com/AdAndRoll/movie-search-server/internal/infra/redis/lock"
	infra_redis_result_cache "github.com/AdAndRoll/movie-search-server/internal/infra/redis/result_cache"
	usecase_aggregation "github.com/AdAndRoll/movie-search-server/internal/usecase/aggregation"
	usecase_preference "github.com/AdAndRoll/movie-search-server/internal/usecase/preference"
	usecase_status "github.com/AdAndRoll/movie-search-server/internal/usecase/status"
)

func Go(cfg *config.Config) {
	setupLogger(cfg.LogFormat)

	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	preferenceRepository := infra_postgres_preference.New(pgConn)
	sessionRepository := infra_postgres_session.New(pgConn)
	resultRepository := infra_postgres_result.New(pgConn)

	var (
		locker     usecase_preference.Locker
		readyCache *infra_redis_result_cache.Driver
	)
	switch cfg.Lock.Backend {
	case config.LockBackendMemory:
		log.Printf("[app] using in-process aggregation lock, ready cache disabled")
		locker = infra_memory_lock.New()
	case config.LockBackendRedis:
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		defer redisConn.Close()
		locker = infra_redis_lock.New(redisConn, "aggregation_lock", cfg.Lock.TTL)
		readyCache = infra_redis_result_cache.New(redisConn, "result_cache", cfg.Redis.ReadyTTL)
	default:
		log.Fatalf("[app] unknown LOCK_BACKEND %q", cfg.Lock.Backend)
	}

	catalog := infra_kinopoisk.New(cfg.Catalog)
	aggregationUC := usecase_aggregation.New(catalog, resultRepository, usecase_aggregation.QueryOptions{
		Limit: cfg.Catalog.Limit,
		Types: cfg.Catalog.Types,
	})

	preferenceOpts := make([]usecase_preference.Option, 0, 1)
	var statusCache usecase_status.ReadyCache
	if readyCache != nil {
		preferenceOpts = append(preferenceOpts, usecase_preference.WithReadyCache(readyCache))
		statusCache = readyCache
	}
	preferenceUC := usecase_preference.New(
		preferenceRepository,
		sessionRepository,
		resultRepository,
		aggregationUC,
		locker,
		preferenceOpts...,
	)
	statusUC := usecase_status.New(resultRepository, preferenceRepository, statusCache)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_preference.New(preferenceUC,
		http_preference.WithLogger(slog.Default().With(slog.String("controller", "preference")))))
	controllerPool.Add(http_status.New(statusUC,
		http_status.WithLogger(slog.Default().With(slog.String("controller", "status")))))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	controllerPool.Register()
	controllerPool.RunAll(ctx, cfg.HTTP.Port)
}

func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
