// Package main is the entry point for todosync. It wires all dependencies
// using samber/do v2, loads the initial todo and category collections,
// serves the view API, and handles graceful shutdown on SIGINT/SIGTERM.
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

	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/todosync/internal/adapters/http"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todosync/internal/app"
	"github.com/jsamuelsen11/todosync/internal/platform/config"
	"github.com/jsamuelsen11/todosync/internal/platform/health"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
	"github.com/jsamuelsen11/todosync/internal/ports"
	"github.com/jsamuelsen11/todosync/internal/state"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	remoteServiceName = "todo-resource"
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

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TodoClient](injector))

	syncer := do.MustInvoke[*app.Synchronizer](injector)
	poller := do.MustInvoke[*app.Poller](injector)

	logger.Info("synchronizer ready",
		slog.String("strategy", syncer.Strategy().String()),
		slog.String("remote", cfg.Client.BaseURL),
		slog.Bool("polling", poller.Enabled()),
	)

	// Background work: the initial load and periodic refreshes. Close cancels
	// both on shutdown.
	background := app.NewDispatcher(ctx)
	initial := app.GoErr(background, syncer.Refresh)
	go func() {
		if res, ok := <-initial; ok && res.Err != nil {
			logger.Warn("initial load failed", slog.Any("error", res.Err))
		}
	}()
	app.GoErr(background, func(ctx context.Context) error {
		poller.Run(ctx)
		return nil
	})

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
		background.Close()
		syncer.Close()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then stop background work and
	// drop any remote resolution still in flight.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	background.Close()
	syncer.Close()

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

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Remote resource.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, remoteServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TodoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoryClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewCategoryClient(client, logger), nil
	})

	// State container and services.
	do.Provide(injector, func(_ do.Injector) (*state.Store, error) {
		return state.New(cfg.View.ItemsPerPage), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Synchronizer, error) {
		strategy, err := app.ParseStrategy(cfg.Sync.Strategy)
		if err != nil {
			return nil, err
		}
		return app.NewSynchronizer(
			do.MustInvoke[*acl.TodoClient](i),
			do.MustInvoke[ports.CategoryClient](i),
			do.MustInvoke[*state.Store](i),
			logger,
			app.WithStrategy(strategy),
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SyncService, error) {
		syncer, err := do.Invoke[*app.Synchronizer](i)
		if err != nil {
			return nil, err
		}
		return syncer, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ViewService, error) {
		store := do.MustInvoke[*state.Store](i)
		return app.NewViewService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Poller, error) {
		syncer := do.MustInvoke[*app.Synchronizer](i)
		return app.NewPoller(syncer, cfg.Sync.RefreshInterval, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	})

	// View API.
	do.Provide(injector, func(i do.Injector) (*handlers.ViewHandler, error) {
		return handlers.NewViewHandler(do.MustInvoke[ports.ViewService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(
			do.MustInvoke[ports.SyncService](i),
			do.MustInvoke[ports.ViewService](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		viewH := do.MustInvoke[*handlers.ViewHandler](i)
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)
		return adapthttp.NewRouter(viewH, todoH, healthH, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
