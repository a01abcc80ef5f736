// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/consideration-vault/middleware"
	"github.com/danielhkuo/consideration-vault/models"
	"github.com/danielhkuo/consideration-vault/store"
)

type ConsiderationHandler struct {
	store *store.Store
}

func NewConsiderationHandler(st *store.Store) *ConsiderationHandler {
	return &ConsiderationHandler{store: st}
}

// CreateConsideration handles POST /considerations
func (h *ConsiderationHandler) CreateConsideration(w http.ResponseWriter, r *http.Request) {
	var req models.CreateConsiderationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.store.CreateConsideration(r.Context(), req.AuthorEmail, req.ConsiderationForm)
	if err != nil {
		writeStoreError(w, err, http.StatusUnauthorized, "Failed to save consideration", "author", req.AuthorEmail)
		return
	}

	slog.Info("consideration created", "id", id, "author", req.AuthorEmail)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateConsiderationResponse{
		Success: true,
		ID:      id,
		Message: "Consideration saved successfully",
	})
}

// ListConsiderations handles GET /considerations?email=
func (h *ConsiderationHandler) ListConsiderations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	email := q.Get("email")
	if strings.TrimSpace(email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	opts := store.ListOptions{Sort: q.Get("sort")}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit <= 0 {
			middleware.FieldErrorResponse(w, http.StatusBadRequest, "limit", "limit must be a positive integer")
			return
		}
		opts.Limit = limit
	}

	considerations, err := h.store.ListConsiderations(r.Context(), email, opts)
	if err != nil {
		writeStoreError(w, err, http.StatusBadRequest, "Failed to fetch considerations", "author", email)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, considerations)
}

// GetConsideration handles GET /considerations/{id}?email=
func (h *ConsiderationHandler) GetConsideration(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email parameter is required")
		return
	}

	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Valid consideration ID is required")
		return
	}

	consideration, err := h.store.GetConsideration(r.Context(), id, email)
	if err != nil {
		writeStoreError(w, err, http.StatusBadRequest, "Failed to fetch consideration", "id", id, "author", email)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, consideration)
}

// DeleteConsideration handles DELETE /considerations/{id}
// The owner's email travels in the JSON body.
func (h *ConsiderationHandler) DeleteConsideration(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Valid consideration ID is required")
		return
	}

	var req models.DeleteConsiderationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.store.DeleteConsideration(r.Context(), id, req.Email); err != nil {
		writeStoreError(w, err, http.StatusBadRequest, "Failed to delete consideration", "id", id, "author", req.Email)
		return
	}

	slog.Info("consideration deleted", "id", id, "author", req.Email)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Consideration deleted successfully",
	})
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeStoreError maps the store's error taxonomy onto HTTP.
// A missing identity is 401 on create but 400 where it is a required parameter.
func writeStoreError(w http.ResponseWriter, err error, unauthenticatedStatus int, failure string, attrs ...any) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.FieldErrorResponse(w, http.StatusBadRequest, verr.Field, verr.Message)
	case errors.Is(err, store.ErrUnauthenticated):
		middleware.ErrorResponse(w, unauthenticatedStatus, "User authentication required")
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Consideration could not be located")
	default:
		slog.Error(strings.ToLower(failure), append([]any{"error", err}, attrs...)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, failure)
	}
}
