// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"strings"
	"time"

	"github.com/danielhkuo/consideration-vault/auth"
	"github.com/danielhkuo/consideration-vault/models"
)

// UpsertUser records a signed-in user, keyed by email. An existing row keeps
// its id and gets the latest name and image. Returns the row's id.
func (s *Store) UpsertUser(ctx context.Context, u models.User) (string, error) {
	email, err := auth.NormalizeEmail(u.Email)
	if err != nil {
		return "", &ValidationError{Field: "email", Message: "email is required"}
	}
	if strings.TrimSpace(u.Name) == "" {
		return "", &ValidationError{Field: "name", Message: "name is required"}
	}

	id := u.ID
	if id == "" {
		id = auth.NewUserID()
	} else if err := auth.ValidUserID(id); err != nil {
		return "", &ValidationError{Field: "id", Message: err.Error()}
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	var stored string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, image, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = excluded.name, image = excluded.image
		RETURNING id
	`, id, email, u.Name, u.Image, time.Now().UTC()).Scan(&stored)
	if err != nil {
		return "", &PersistenceError{Op: "upsert user", Err: err}
	}

	return stored, nil
}

// ListUsers returns every known user, oldest first
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, email, name, image, created_at
		FROM users
		ORDER BY created_at, email
	`)
	if err != nil {
		return nil, &PersistenceError{Op: "list users", Err: err}
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		var createdAt time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &createdAt); err != nil {
			return nil, &PersistenceError{Op: "list users", Err: err}
		}
		u.CreatedAt = &createdAt
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list users", Err: err}
	}

	return users, nil
}
