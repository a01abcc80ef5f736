// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/consideration-vault/handlers"
	"github.com/danielhkuo/consideration-vault/metrics"
	"github.com/danielhkuo/consideration-vault/middleware"
	"github.com/danielhkuo/consideration-vault/store"
)

func NewRouter(st *store.Store, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	considerationHandler := handlers.NewConsiderationHandler(st)
	userHandler := handlers.NewUserHandler(st)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, m.Middleware(pattern, middleware.WithLogging(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", m.Handler())

	// Considerations (scoped to the caller's email)
	handle("POST /considerations", considerationHandler.CreateConsideration)
	handle("GET /considerations", considerationHandler.ListConsiderations)
	handle("GET /considerations/{id}", considerationHandler.GetConsideration)
	handle("DELETE /considerations/{id}", considerationHandler.DeleteConsideration)

	// Users (sign-in callback)
	handle("POST /users", userHandler.UpsertUser)
	handle("GET /users", userHandler.ListUsers)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("consideration-vault API v1"))
	})

	return mux
}
