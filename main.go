package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/consideration-vault/cliparse"
	"github.com/danielhkuo/consideration-vault/db"
	"github.com/danielhkuo/consideration-vault/metrics"
	"github.com/danielhkuo/consideration-vault/middleware"
	"github.com/danielhkuo/consideration-vault/router"
	"github.com/danielhkuo/consideration-vault/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect and verify
	dbConn, err := db.Open(context.Background(), db.Dialect(cfg.DatabaseType), cfg.DatabaseURL, cfg.MaxOpenConns)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, db.Dialect(cfg.DatabaseType)); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	m := metrics.New("consideration-vault")
	st := store.New(dbConn, cfg.TxTimeout, m)

	// Create router
	mux := router.NewRouter(st, m)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight transactions finish
		<-ctrlc
		slog.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.TxTimeout+5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
