package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ecbrates/internal/adapters"
	"ecbrates/internal/adapters/cache"
	"ecbrates/internal/adapters/ecbfeed"
	"ecbrates/internal/adapters/postgres"
	"ecbrates/internal/adapters/redis"
	"ecbrates/internal/api"
	"ecbrates/internal/config"
	"ecbrates/internal/platform/db"
	httpserver "ecbrates/internal/platform/http"
	"ecbrates/internal/rate"
	"ecbrates/internal/rate/handler"
	"ecbrates/internal/sensor"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, performs the first refresh, starts scheduler and HTTP server
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	setupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Configured pairs, bad entries are skipped
	validator := rate.NewValidator()
	pairs, pairErrs := validator.ParsePairs(appCfg.Sensors.CurrencyPairs)
	for _, pairErr := range pairErrs {
		logrus.WithError(pairErr).Warn("Skipping invalid currency pair")
	}
	if len(pairs) == 0 {
		err = errors.New("no valid currency pairs configured")
		logrus.WithError(err).Error("Failed to configure sensors")
		return err
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	feedClient := ecbfeed.NewClient(&http.Client{Timeout: httpTimeout}, appCfg.Feed.URL)

	valuationCache, err := cache.NewValuationCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create valuation cache")
		return err
	}
	defer valuationCache.Close()

	// Optional archive
	var archive adapters.RateArchive
	if appCfg.Archive.Enabled {
		startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		logrus.Info("✅ Postgres connection successful")

		if migrateErr := db.Migrate(startupCtx, pool); migrateErr != nil {
			logrus.WithError(migrateErr).Error("Failed to migrate db")
			return migrateErr
		}
		archive = postgres.NewRateArchive(pool)
	}

	// Sensor publishers
	registry := sensor.NewRegistry()
	publishers := sensor.FanOut{registry}
	if appCfg.Redis.Enabled {
		redisPublisher, redisErr := redis.NewPublisher(appCfg.Redis.Addr, appCfg.Redis.Password, appCfg.Redis.DB)
		if redisErr != nil {
			logrus.WithError(redisErr).Error("Failed to connect sensor publisher")
			return redisErr
		}
		defer func() { _ = redisPublisher.Close() }()
		publishers = append(publishers, redisPublisher)
		logrus.Info("✅ Redis publisher connected")
	}

	board := sensor.NewBoard(pairs, appCfg.Sensors.Precision, publishers, sensor.Options{
		UnavailableOnFetchError: appCfg.Sensors.UnavailableOnFetchError,
	})
	board.PublishAll(ctx)

	// Services
	store := rate.NewStore()
	refresher := rate.NewRefresher(feedClient, store, valuationCache, archive, board)
	rateService := rate.NewService(store, valuationCache, refresher, appCfg.Sensors.Precision)

	if warmErr := refresher.WarmStart(ctx); warmErr != nil {
		logrus.WithError(warmErr).Warn("Archive warm start skipped")
	}

	// First refresh happens before anything is served, a failure leaves sensors unavailable
	if _, refreshErr := refresher.Refresh(ctx, uuid.NewString()); refreshErr != nil {
		logrus.WithError(refreshErr).Warn("Initial refresh failed, will retry on schedule")
	}

	scheduler := rate.NewScheduler(refresher, appCfg.Sensors.UpdateInterval())
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	rateHandler := handler.NewRateHandler(validator, rateService, registry)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func setupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}
