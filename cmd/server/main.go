package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hmorales/wedplan/internal/auth"
	"github.com/hmorales/wedplan/internal/config"
	"github.com/hmorales/wedplan/internal/server"
	"github.com/hmorales/wedplan/internal/storage"
	"github.com/hmorales/wedplan/internal/storage/postgres"
	"github.com/hmorales/wedplan/internal/storage/sqlite"
	"github.com/hmorales/wedplan/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Configuration error:", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	logger := slog.Default()

	var store storage.Store
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := postgres.New(cfg.Storage.DSN)
		if err != nil {
			logger.Error("Failed to initialize postgres storage", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
		logger.Info("Storage initialized", "driver", "postgres")
	default:
		lite, err := sqlite.New(cfg.Storage.Path)
		if err != nil {
			logger.Error("Failed to initialize sqlite storage", "error", err)
			os.Exit(1)
		}
		defer lite.Close()
		store = lite
		logger.Info("Storage initialized", "driver", "sqlite", "database", cfg.Storage.Path)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenHours)*time.Hour)
	srv := server.New(store, jwtManager, logger)

	// Wrap with h2c so HTTP/2 works without TLS behind a terminating proxy.
	handler := h2c.NewHandler(srv.Routes(), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
