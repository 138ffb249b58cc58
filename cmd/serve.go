package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signup/internal/app"
	"signup/internal/config"
	"signup/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the registration HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(viper.GetViper())
		logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

		res, err := app.Open(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open resources: %w", err)
		}
		defer func() {
			if err := res.Close(); err != nil {
				logger.Error("error closing resources", "error", err)
			}
		}()

		fiberApp := app.New(cfg, res, logger, os.Stdout)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		listenErr := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", cfg.AppPort, "driver", cfg.DatabaseDriver)
			listenErr <- fiberApp.Listen(cfg.AppPort)
		}()

		select {
		case err := <-listenErr:
			return fmt.Errorf("server failed to start: %w", err)
		case <-quit:
		}

		logger.Info("shutting down server")
		if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("error during Fiber shutdown", "error", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "", "listen address, e.g. :8080 (overrides APP_PORT)")
	serveCmd.Flags().String("db-driver", "", "postgres, sqlite or memory (overrides DATABASE_DRIVER)")
	if err := viper.BindPFlag("APP_PORT", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("DATABASE_DRIVER", serveCmd.Flags().Lookup("db-driver")); err != nil {
		panic(err)
	}
}
