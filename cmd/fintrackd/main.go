package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	"fintrack/internal/events"
	"fintrack/internal/log"
	"fintrack/internal/server"
	"fintrack/internal/storage"
)

func main() {
	// Load .env for local development; ignore errors in production.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := log.New(log.ParseLevel(cfg.LogLevel), "fintrackd")

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", "error", err)
		os.Exit(1)
	}

	repo, err := storage.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("failed to initialize AMQP publisher", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		logger.Info("change events enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("change events disabled - no AMQP_URL provided")
	}

	var srv *server.Server
	if publisher != nil {
		srv = server.New(repo, publisher, logger.WithComponent("http"))
	} else {
		srv = server.New(repo, nil, logger.WithComponent("http"))
	}

	httpServer := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        srv.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting fintrackd", "port", cfg.Port, "db", cfg.SQLiteDBPath)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}
