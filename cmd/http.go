package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/pathagar/internal/api"
	"github.com/oseayemenre/pathagar/internal/config"
	"github.com/oseayemenre/pathagar/internal/logger"
	"github.com/oseayemenre/pathagar/internal/store"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	default:
		ctx, cancel := context.WithTimeout(ctx, cfg.Mongo_timeout)
		defer cancel()

		return store.NewMongoStore(ctx, cfg.MongoURI(), cfg.Db_name)
	}
}

func HTTPCommand(ctx context.Context) *cobra.Command {
	var addr int
	var env string
	var storeKind string
	var envFile string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "run pathagar http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			cfg, err := config.Load(envFile)

			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				cfg.Port = addr
			}
			if cmd.Flags().Changed("env") {
				cfg.Env = env
			}
			if cmd.Flags().Changed("store") {
				cfg.Store = storeKind
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			baseLogger, err := logger.NewBaseLogger(os.Stderr, cfg.Env)

			if err != nil {
				return err
			}

			logger := logger.NewSlogLogger(baseLogger)

			db, err := newStore(ctx, cfg)

			if err != nil {
				return err
			}

			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := db.Close(ctx); err != nil {
					logger.Error(fmt.Sprintf("error closing store: %v", err), "service", "HTTPCommand")
				}
			}()

			logger.Info("store connected", "store", cfg.Store, "database", cfg.Db_name)

			router := chi.NewRouter()
			api.New(router, logger, db, cfg).RegisterRoutes()

			httpServer := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
				IdleTimeout:       15 * time.Minute,
			}
			errCh := make(chan error, 1)

			logger.Info("server startup", "status", fmt.Sprintf("server starting on port: %d", cfg.Port))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err

			case <-sig:
				logger.Info("server shutdown", "status", "kill signal received")
				ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return fmt.Errorf("error shutting down server: %v", err)
				}

				logger.Info("server shutdown", "status", "shutdown complete...")
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&addr, "addr", "a", 5000, "server port, overrides PORT")
	cmd.Flags().StringVarP(&env, "env", "e", config.EnvDev, "current working environment, overrides ENV")
	cmd.Flags().StringVarP(&storeKind, "store", "s", config.StoreMongo, "backing store (mongo or memory), overrides STORE")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	return cmd
}
