package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		server.NewLogger(os.Stderr, "barber-booking", false).Error("config.load_failed", "error", err)
		os.Exit(1)
	}

	logger := server.NewLogger(os.Stdout, "barber-booking", cfg.IsLocal())

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------------------------------------
	// Audit sinks
	// --------------------------------------------------
	sinks := []audit.Sink{audit.New(logger)}

	var publisher *audit.AMQPPublisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = audit.NewAMQPPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
		if err != nil {
			logger.Error("rabbitmq.connect_failed", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, publisher)
	}

	dispatcher := audit.NewDispatcher(logger, cfg.Audit.QueueSize, sinks...)

	deps := routes.Deps{
		Config:  cfg,
		Logger:  logger,
		Store:   repository.NewMemoryStore(),
		Metrics: metrics.New(),
		Audit:   dispatcher,
	}

	if cfg.Cache.Enabled {
		slots, err := cache.NewSlotsLRU(cfg.Cache.SlotsSize, logger)
		if err != nil {
			logger.Error("cache.init_failed", "error", err)
			os.Exit(1)
		}
		deps.Cache = slots
	}

	router, err := routes.New(deps)
	if err != nil {
		logger.Error("router.init_failed", "error", err)
		os.Exit(1)
	}

	logger.Info("app.starting",
		"env", cfg.App.Env,
		"timezone", cfg.App.Timezone,
		"week_start", cfg.App.WeekStart,
		"cache", cfg.Cache.Enabled,
		"rabbitmq", cfg.RabbitMQ.Enabled,
	)

	runErr := server.Start(ctx, cfg, router, logger)

	// --------------------------------------------------
	// Drain audit events before exiting
	// --------------------------------------------------
	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := dispatcher.Close(drainCtx); err != nil {
		logger.Warn("audit.drain_incomplete", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn("rabbitmq.close_failed", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("http.server.failed", "error", runErr)
		os.Exit(1)
	}
}
