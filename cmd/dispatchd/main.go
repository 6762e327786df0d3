// @title           VPC Dispatch Widget API
// @version         1.0
// @description     Session-scoped Type-B truck dispatch widget: estimate, WhatsApp handoff and simulated tracking.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/vpclogistics/dispatch-widget/internal/api"
	"github.com/vpclogistics/dispatch-widget/internal/api/middleware"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/internal/core/service"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/analytics"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/config"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/db/memory"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/db/mongo"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/db/redis"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/queue"
	"github.com/vpclogistics/dispatch-widget/pkg/logger"
)

const (
	serviceName     = "dispatch-widget"
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	if err := run(); err != nil {
		// The logger may not be initialised if config failed.
		log := logger.Init(logger.Options{Service: serviceName})
		log.Fatal().Err(err).Msg("dispatchd exited")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.OptionsFor(cfg.Env, cfg.LogLevel, serviceName))
	log.Info().
		Str("env", cfg.Env).
		Str("session_store", cfg.SessionStore).
		Str("analytics_sink", cfg.Analytics.Sink).
		Msg("starting")

	// --- Backends (only those configured) ---
	var rdb *goredis.Client
	if cfg.UsesRedis() {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
	}

	var mdb *gomongo.Database
	if cfg.UsesMongo() {
		store, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(shutdownTimeout) }()
		mdb = store.DB
	}

	// --- Sessions ---
	var sessions ports.SessionRepository
	if rdb != nil {
		sessions = redis.NewSessionRepository(rdb, cfg.SessionTTL)
	} else {
		mem := memory.NewSessionRepository(cfg.SessionTTL)
		go mem.RunSweeper(ctx, sweepInterval)
		sessions = mem
	}

	// --- Analytics pipeline ---
	sinks := []ports.AnalyticsSink{analytics.NewLogSink(logger.Component("analytics"))}
	if mdb != nil {
		repo := mongo.NewAnalyticsRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("analytics indexes not created")
		}
		sinks = append(sinks, repo)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Analytics.Workers, logger.Component("analytics_queue"), sinks...)
	dispatcher.Start(workerCtx)

	// --- Service + HTTP ---
	tokens := service.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)
	widgets := service.NewWidgetService(sessions, tokens, dispatcher, service.HandoffConfig{
		Host:           cfg.Handoff.Host,
		Recipient:      cfg.Handoff.Recipient,
		FallbackAnchor: cfg.Handoff.FallbackAnchor,
	}, logger.Component("widget"))

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go runLimiterCleanup(ctx, limiter)

	e := api.NewRouter(api.RouterDeps{
		Widgets:     widgets,
		Tokens:      tokens,
		RateLimiter: limiter,
		Mongo:       mdb,
		Redis:       rdb,
		Log:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stopWorkers()
		dispatcher.Wait()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server forced to shutdown")
	}

	// Requests are done; flush what is left in the analytics queue.
	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("stopped gracefully")
	return nil
}

func runLimiterCleanup(ctx context.Context, l *middleware.IPRateLimiter) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}
