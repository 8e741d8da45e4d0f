package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry-delivery-api/config"
	"laundry-delivery-api/handlers"
	"laundry-delivery-api/logger"
	"laundry-delivery-api/routes"
	"laundry-delivery-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("laundry-api", "error").Error("invalid configuration", "action", "config_load", "error", err.Error())
		os.Exit(1)
	}
	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// One store handle for the whole process; nil means degraded mode
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Open(connectCtx, cfg.DatabaseURL, cfg.DBName())
	cancelConnect()
	switch {
	case err != nil:
		log.Error("database unavailable, running without storage", "action", "db_connect", "error", err.Error())
		db = nil
	case db == nil:
		log.Warn("DATABASE_URL not set, running without storage", "action", "db_connect")
	default:
		log.Info("✅ Database connected", "action", "db_connect", "database", db.Name())
	}

	h := handlers.New(store.NewGateway(db), cfg, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Server running on http://localhost:"+cfg.Port, "action", "server_start")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server", "action", "server_start", "error", err.Error())
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...", "action", "server_stop")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if db != nil {
		if err := db.Close(ctx); err != nil {
			log.Error("close database", "action", "db_close", "error", err.Error())
		}
	}
}
