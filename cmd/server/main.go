// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, opens the configured task-list store, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/usertask-service/internal/adapters/http"
	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/usertask-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/usertask-service/internal/adapters/storage"
	"github.com/jsamuelsen11/usertask-service/internal/adapters/storage/memory"
	mongostore "github.com/jsamuelsen11/usertask-service/internal/adapters/storage/mongo"
	"github.com/jsamuelsen11/usertask-service/internal/app"
	"github.com/jsamuelsen11/usertask-service/internal/domain/user"
	"github.com/jsamuelsen11/usertask-service/internal/platform/config"
	"github.com/jsamuelsen11/usertask-service/internal/platform/health"
	"github.com/jsamuelsen11/usertask-service/internal/platform/logging"
	"github.com/jsamuelsen11/usertask-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/usertask-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout   = 5 * time.Second
	storeShutdownTimeout  = 5 * time.Second
	readinessProbeTimeout = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph, opening the store).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*backend](injector)
	registry.Register(do.MustInvoke[*storage.Guarded](injector))
	if store.health != nil {
		registry.Register(store.health)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		store.Close(logger)
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Close the store once no request can reach it.
	store.Close(logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// backend is the opened task-list store selected by store.driver.
type backend struct {
	repo   ports.TaskListRepository
	system string
	health ports.HealthChecker
	close  func(context.Context) error
}

// Close releases the store's connections, logging any failure.
func (b *backend) Close(logger *slog.Logger) {
	if b.close == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeShutdownTimeout)
	defer cancel()
	if err := b.close(ctx); err != nil {
		logger.Error("store shutdown error", slog.String("store", b.system), slog.Any("error", err))
	}
}

func openBackend(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		store := memory.New()
		for _, u := range cfg.Memory.SeedUsers {
			if err := store.SeedUser(user.User{ID: u.ID, Username: u.Username}); err != nil {
				return nil, err
			}
		}
		logger.Info("using in-memory store", slog.Int("seed_users", len(cfg.Memory.SeedUsers)))
		return &backend{repo: store, system: config.DriverMemory}, nil

	case config.DriverMongo:
		store, err := mongostore.Connect(ctx, &cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		return &backend{repo: store, system: store.Name(), health: store, close: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*backend, error) {
		return openBackend(context.Background(), &cfg.Store, logger)
	})

	do.Provide(injector, func(i do.Injector) (*storage.Guarded, error) {
		b := do.MustInvoke[*backend](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return storage.NewGuarded(b.repo, b.system, &cfg.Store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskListService, error) {
		repo := do.MustInvoke[*storage.Guarded](i)
		return app.NewTaskListService(repo, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskListHandler, error) {
		svc := do.MustInvoke[ports.TaskListService](i)
		return handlers.NewTaskListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, readinessProbeTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		taskListH := do.MustInvoke[*handlers.TaskListHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(taskListH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
