package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clientes-api/internal/audit"
	"github.com/BruksfildServices01/clientes-api/internal/config"
	dbpkg "github.com/BruksfildServices01/clientes-api/internal/db"
	"github.com/BruksfildServices01/clientes-api/internal/logger"
	"github.com/BruksfildServices01/clientes-api/internal/routes"
	"github.com/BruksfildServices01/clientes-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)
	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	photos, err := storage.New(cfg.Storage, log)
	if err != nil {
		log.Error("failed to open photo storage", "error", err)
		os.Exit(1)
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	r := routes.NewRouter(routes.Deps{
		DB:     db,
		Photos: photos,
		Audit:  dispatcher,
		Logger: log,
		Config: cfg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}

	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
