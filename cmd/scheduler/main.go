package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/app"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/config"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/repository"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/server"
	"github.com/MohamedREDA-24/AI-interview-agent/internal/service"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Interview scheduling service",
	Long:  "Manages interview time slots and session bookings for the AI interview agent.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scheduling HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// services bundles the scheduling core handed to commands.
type services struct {
	slots    *service.SlotService
	booking  *service.BookingService
	sessions *service.SessionService
}

// withScheduler loads config, connects the pool, migrates the schema, seeds
// default slots, and hands the wired services to fn. Migration or seeding
// failure aborts startup: the store is unusable.
func withScheduler(fn func(ctx context.Context, svc *services) error) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if version, err := migrator.Version(ctx); err == nil {
		logger.Info("Database schema ready", zap.Int64("migration_version", version))
	}

	store := repository.NewStore(pool)
	svc := &services{
		slots:    service.NewSlotService(store, logger),
		booking:  service.NewBookingService(store, logger),
		sessions: service.NewSessionService(store, logger),
	}

	if err := svc.slots.EnsureDefaultSlots(ctx); err != nil {
		return fmt.Errorf("seed default slots: %w", err)
	}

	return fn(ctx, svc)
}

func runServe(_ *cobra.Command, _ []string) error {
	return withScheduler(func(ctx context.Context, svc *services) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(svc.slots, svc.booking, svc.sessions, logger)
		httpServer := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: srv.Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Scheduler API listening", zap.String("addr", cfg.HTTPAddr))
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
		}

		return nil
	})
}
