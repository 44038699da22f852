package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Eursukkul/venue-staffing/config"
	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/consumer"
	"github.com/Eursukkul/venue-staffing/internal/metrics"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/service"
	"github.com/Eursukkul/venue-staffing/pkg/database"
	"github.com/Eursukkul/venue-staffing/pkg/logging"
	"github.com/Eursukkul/venue-staffing/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "staffing",
		Short:        "Venue staffing service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "setup-db",
			Short: "Create tables and seed reference documents",
			RunE:  runSetupDB,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.DSN(), log)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Messaging is optional; without a broker URL events are not published.
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			log.Error("failed to connect to RabbitMQ", zap.Error(err))
			return err
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, log)
		if err != nil {
			log.Error("failed to connect to RabbitMQ", zap.Error(err))
			return err
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Error("failed to start consuming", zap.Error(err))
			return err
		}
		consumer.NewActivityConsumer(repository.NewActivityRepository(db), log).Start(ctx, msgs)
	} else {
		log.Warn("RABBITMQ_URL not set, messaging disabled")
	}

	e, err := newServer(serverDeps{
		DB:        db,
		Publisher: publisher,
		Tokens:    auth.NewTokenParser(cfg.JWTSecret),
		Metrics:   metrics.New(),
		Log:       log,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("staffing service starting", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runSetupDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.DSN(), log)
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}

	if err := database.Setup(cmd.Context(), db); err != nil {
		log.Error("database setup failed", zap.Error(err))
		return err
	}
	log.Info("database setup completed")
	return nil
}
