// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/consideration-vault/middleware"
	"github.com/danielhkuo/consideration-vault/models"
	"github.com/danielhkuo/consideration-vault/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// UpsertUser handles POST /users
// Called by the sign-in callback before any consideration request for a new identity.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var req models.User
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.store.UpsertUser(r.Context(), req)
	if err != nil {
		writeStoreError(w, err, http.StatusBadRequest, "Failed to create user", "email", req.Email)
		return
	}

	slog.Info("user upserted", "user_id", id, "email", req.Email)

	middleware.JSONResponse(w, http.StatusCreated, models.UpsertUserResponse{
		Success: true,
		ID:      id,
		Message: "User created successfully",
	})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeStoreError(w, err, http.StatusBadRequest, "Failed to fetch users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListUsersResponse{Users: users})
}
