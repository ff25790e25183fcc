package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/liviaspereira/HomeCleanup-API/internal/addresses"
	"github.com/liviaspereira/HomeCleanup-API/internal/app"
	"github.com/liviaspereira/HomeCleanup-API/internal/auth"
	"github.com/liviaspereira/HomeCleanup-API/internal/observability"
	"github.com/liviaspereira/HomeCleanup-API/internal/platform/db"
	"github.com/liviaspereira/HomeCleanup-API/internal/shared"
	"github.com/liviaspereira/HomeCleanup-API/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}
	if err := run(); err != nil {
		slog.Default().Error("homecleanup exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg)

	store, err := db.Open(ctx, cfg.DBDriver, cfg.SQLitePath, cfg.PGDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("store close", slog.Any("error", err))
		}
	}()

	if err := db.Migrate(ctx, store); err != nil {
		return err
	}
	logger.Info("store ready", slog.String("driver", string(store.Dialect())))

	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}
	validator := shared.NewValidator()

	usersService := users.NewService(users.NewRepository(store), hasher)
	usersHandler := users.NewHandler(logger, usersService, validator)

	addressService := addresses.NewService(addresses.NewRepository(store))
	addressHandler := addresses.NewHandler(logger, addressService, validator)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		UsersHandler:   usersHandler,
		AddressHandler: addressHandler,
		Store:          store,
		Metrics:        observability.NewMetrics(),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
