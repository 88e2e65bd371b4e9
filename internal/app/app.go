package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/zakat-tracker/internal/adapter/cache"
	"github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	assetrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/asset"
	auditrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/audit"
	checkpointrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/checkpoint"
	distributionrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/distribution"
	metricrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/metric"
	recordrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/record"
	reminderrepo "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres/reminder"
	"github.com/heartmarshall/zakat-tracker/internal/adapter/provider/metals"
	"github.com/heartmarshall/zakat-tracker/internal/auth"
	"github.com/heartmarshall/zakat-tracker/internal/cipher"
	"github.com/heartmarshall/zakat-tracker/internal/config"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/internal/jobs"
	"github.com/heartmarshall/zakat-tracker/internal/service/analytics"
	"github.com/heartmarshall/zakat-tracker/internal/service/distribution"
	"github.com/heartmarshall/zakat-tracker/internal/service/hawl"
	"github.com/heartmarshall/zakat-tracker/internal/service/record"
	"github.com/heartmarshall/zakat-tracker/internal/service/reminder"
	"github.com/heartmarshall/zakat-tracker/internal/service/threshold"
	"github.com/heartmarshall/zakat-tracker/internal/service/wealth"
	"github.com/heartmarshall/zakat-tracker/internal/transport/middleware"
	"github.com/heartmarshall/zakat-tracker/internal/transport/rest"
)

// triggerLimitPerMinute bounds manual triggers of one job by one operator.
const triggerLimitPerMinute = 6

// App holds the wired components of one process.
type App struct {
	cfg *config.Config
	log *slog.Logger

	pool     *pgxpool.Pool
	redis    *redis.Client
	registry *prometheus.Registry

	Thresholds    *threshold.Service
	Records       *record.Service
	Distributions *distribution.Service
	Reminders     *reminder.Service
	Analytics     *analytics.Service
	Hawl          *hawl.Scheduler
	Jobs          *jobs.Orchestrator
	JWT           *auth.JWTManager
}

// Run is the application entry point. It loads configuration, wires every
// component and serves until SIGINT/SIGTERM.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New connects to the database (and Redis when configured) and builds the
// service graph.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.pool = pool

	fc, err := cipher.New(cfg.Cipher.Secret, cfg.Cipher.Salt)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	priceCache, err := a.priceCache(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	records := recordrepo.New(pool, fc)
	audits := auditrepo.New(pool, fc)
	assets := assetrepo.New(pool, fc)
	distributions := distributionrepo.New(pool, fc)
	reminders := reminderrepo.New(pool)
	metrics := metricrepo.New(pool)
	checkpoints := checkpointrepo.New(pool)

	if !cfg.Threshold.SourceConfigured() {
		logger.Warn("threshold price source not configured, fallback prices will be used")
	}
	prices := metals.NewProvider(cfg.Threshold.BaseURL, cfg.Threshold.APIKey, cfg.Threshold.Timeout, logger)
	a.Thresholds = threshold.NewService(logger, prices, priceCache, threshold.Config{
		Currency:            cfg.Threshold.Currency,
		CacheTTL:            cfg.Threshold.CacheTTL,
		FetchTimeout:        cfg.Threshold.Timeout,
		GoldGrams:           cfg.Threshold.GoldGrams,
		SilverGrams:         cfg.Threshold.SilverGrams,
		FallbackGoldPrice:   cfg.Threshold.FallbackGoldPrice,
		FallbackSilverPrice: cfg.Threshold.FallbackSilverPrice,
	})
	wealthSvc := wealth.NewService(logger, assets)

	a.Records = record.NewService(logger, records, audits, wealthSvc, a.Thresholds, metrics, txm, record.Config{
		Currency:   cfg.Threshold.Currency,
		MaxRetries: cfg.Hawl.MaxRetries,
	})
	a.Distributions = distribution.NewService(logger, distributions, records, metrics)
	a.Hawl = hawl.NewScheduler(logger, records, audits, wealthSvc, a.Thresholds, txm, hawl.Config{
		BatchSize:  cfg.Hawl.BatchSize,
		MaxRetries: cfg.Hawl.MaxRetries,
	})
	a.Reminders = reminder.NewService(logger, reminders, records, distributions, reminder.Config{
		Lookahead:      cfg.Reminder.Lookahead,
		DedupeWindow:   cfg.Reminder.DedupeWindow,
		UnlockedAfter:  cfg.Reminder.UnlockedAfter,
		DefaultSnooze:  cfg.Reminder.DefaultSnooze,
		HighPriorityIn: cfg.Reminder.HighPriorityIn,
		BatchSize:      cfg.Reminder.BatchSize,
	})
	a.Analytics = analytics.NewService(logger, records, distributions, metrics, checkpoints, analytics.Config{
		TrendThreshold: cfg.Analytics.TrendThreshold,
		TrendSeriesTTL: cfg.Analytics.TrendSeriesTTL,
		BreakdownTTL:   cfg.Analytics.BreakdownTTL,
		DefaultTTL:     cfg.Analytics.DefaultTTL,
		RegenBatchSize: cfg.Analytics.RegenBatchSize,
	})

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a.Jobs, err = jobs.New(logger, a.registry, BuildJobs(cfg.Jobs, JobHandlers{
		Hawl:      a.Hawl.Run,
		Reminders: a.Reminders.Run,
		Summaries: a.Analytics.RegenerateSummaries,
		Cleanup:   a.Analytics.CleanupExpired,
	}))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init jobs: %w", err)
	}

	a.JWT = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	return a, nil
}

type thresholdCache interface {
	Get(ctx context.Context, basis domain.ThresholdBasis, currency string) (domain.Threshold, bool, error)
	Set(ctx context.Context, t domain.Threshold, ttl time.Duration) error
}

// priceCache selects the threshold cache backend. Redis shares prices across
// replicas; memory is per process.
func (a *App) priceCache(ctx context.Context) (thresholdCache, error) {
	if a.cfg.Threshold.CacheBackend != "redis" {
		return threshold.NewMemoryCache(), nil
	}
	client, err := cache.Connect(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	a.redis = client
	return cache.NewThresholdStore(client, a.cfg.Redis.Prefix), nil
}

// Serve runs the ops HTTP server and the job orchestrator until ctx is
// cancelled or either fails, then shuts both down.
func (a *App) Serve(ctx context.Context) error {
	health := rest.NewHealthHandler(a.pool, Version).WithJobs(a.Jobs.Status)
	if a.redis != nil {
		health.WithComponent("price_cache", rest.PingFunc(func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		}))
	}

	limiter := middleware.NewRateLimiter(triggerLimitPerMinute, time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr: a.cfg.Server.Host + ":" + strconv.Itoa(a.cfg.Server.Port),
		Handler: rest.NewRouter(rest.RouterDeps{
			Health:       health,
			Ops:          rest.NewOpsHandler(a.Jobs, a.log),
			Operator:     middleware.RequireOperator(a.JWT, a.log),
			TriggerLimit: limiter.Middleware(rest.TriggerLimitKey),
			Gatherer:     a.registry,
			Logger:       a.log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("ops server started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})

	a.Jobs.Start(gctx)

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		httpErr := srv.Shutdown(shutdownCtx)

		jobsCtx, cancelJobs := context.WithTimeout(context.WithoutCancel(gctx), a.cfg.Jobs.ShutdownTimeout)
		defer cancelJobs()
		jobsErr := a.Jobs.Shutdown(jobsCtx)

		return errors.Join(httpErr, jobsErr)
	})

	if err := g.Wait(); err != nil {
		a.log.Error("shutdown with error", slog.String("error", err.Error()))
		return err
	}
	a.log.Info("stopped")
	return nil
}

// Close releases connections. Safe on a partially built App.
func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
