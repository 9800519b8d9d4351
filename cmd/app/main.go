package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apparel/cmd"
	httpadapter "apparel/internal/adapters/in/http"
	"apparel/internal/adapters/in/http/openapi"
	inrabbit "apparel/internal/adapters/in/rabbitmq"
	"apparel/internal/adapters/in/ws"
	"apparel/internal/adapters/out/postgres"
	"apparel/internal/adapters/out/rabbitmq"
	"apparel/internal/adapters/out/realtime"
	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/eventhub"
	"apparel/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err = run(ctx, stop, configs, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run wires and serves the application until ctx is done. Startup failures are returned
// so every resource opened before them is released by its deferred close.
func run(ctx context.Context, stop context.CancelFunc, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer sqlDB.Close()
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	hub := eventhub.NewHub()
	defer hub.Close()
	instanceID := kernel.NewUUID().String()

	var relay realtime.Relay
	if configs.RelayEnabled() {
		conn, dialErr := rabbitmq.Dial(configs.AMQPURL)
		if dialErr != nil {
			return fmt.Errorf("error connecting to message broker: %w", dialErr)
		}
		defer conn.Close()

		publisher := rabbitmq.NewPublisher(conn, configs.AMQPExchange, instanceID)
		defer publisher.Close()
		relay = publisher

		consumer := inrabbit.NewConsumer(conn, configs.AMQPExchange, instanceID, hub, logger)
		go func() {
			if runErr := consumer.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				logger.Error("Relay consumer stopped", "error", runErr)
			}
		}()
		logger.Info("Event relay enabled", "exchange", configs.AMQPExchange, "instance_id", instanceID)
	}

	notifier := realtime.NewNotifier(hub, relay, configs.RelayTimeout, logger)
	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetLateOrdersQueryHandler(),
		notifier,
		hub,
		jobs.Schedules{LateScan: configs.LateScanSchedule, HubStats: configs.HubStatsSchedule},
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		return fmt.Errorf("error loading API description: %w", err)
	}

	e := newEcho(logger)
	// Websocket connections are hijacked and not tracked by Shutdown; closing the hub ends them.
	e.Server.RegisterOnShutdown(hub.Close)
	server := httpadapter.NewServer(app.CreateHTTPHandlers(), time.Now, logger)
	server.RegisterRoutes(e, validator, ws.NewHandler(hub, configs.WSBuffer, configs.WSWriteTimeout, logger))

	startWebServer(ctx, stop, e, configs.HTTPPort, logger)
	return nil
}

func newEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	}))
	return e
}

// startWebServer serves until ctx is done or the listener fails, then shuts down.
func startWebServer(ctx context.Context, stop context.CancelFunc, e *echo.Echo, port string, logger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
