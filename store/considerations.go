// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/consideration-vault/auth"
	"github.com/danielhkuo/consideration-vault/models"
)

// ListOptions selects the vault view
type ListOptions struct {
	Sort  string // models.SortRecent (default) or models.SortRating
	Limit int    // 0 means no limit
}

var selectConsiderationsSQL = buildSelect()

func buildSelect() string {
	var b strings.Builder
	b.WriteString("SELECT c.id, c.name, c.age, c.date_met, c.overall_notes, c.author_email, c.created_at, c.updated_at")
	for _, k := range assessmentKinds {
		for _, col := range k.columns {
			b.WriteString(", ")
			b.WriteString(k.alias + "." + col)
		}
	}
	b.WriteString("\nFROM considerations c")
	for _, k := range assessmentKinds {
		fmt.Fprintf(&b, "\nLEFT JOIN %s %s ON c.id = %s.consideration_id", k.table, k.alias, k.alias)
	}
	return b.String()
}

type basicValues struct {
	age     *int
	dateMet *time.Time
	notes   string
}

func validateForm(f *models.ConsiderationForm) (basicValues, error) {
	var v basicValues

	if strings.TrimSpace(f.BasicInfo.Name) == "" {
		return v, &ValidationError{Field: "basicInfo.name", Message: "name is required"}
	}

	if s := strings.TrimSpace(f.BasicInfo.Age); s != "" {
		age, err := strconv.Atoi(s)
		if err != nil || age <= 0 {
			return v, &ValidationError{Field: "basicInfo.age", Message: "age must be a positive whole number"}
		}
		v.age = &age
	}

	if s := strings.TrimSpace(f.BasicInfo.DateMet); s != "" {
		d, err := time.Parse(models.DateLayout, s)
		if err != nil {
			return v, &ValidationError{Field: "basicInfo.dateMet", Message: "date must be formatted YYYY-MM-DD"}
		}
		v.dateMet = &d
	}

	if err := validateRatings(f); err != nil {
		return v, err
	}

	v.notes = f.OverallNotes
	return v, nil
}

// CreateConsideration stores the parent row and its eight assessments atomically
// and returns the generated id.
func (s *Store) CreateConsideration(ctx context.Context, authorEmail string, form models.ConsiderationForm) (int64, error) {
	author, err := auth.NormalizeEmail(authorEmail)
	if err != nil {
		return 0, err
	}

	basic, err := validateForm(&form)
	if err != nil {
		return 0, err
	}

	var id int64
	now := time.Now().UTC()
	err = s.withTx(ctx, "create consideration", func(ctx context.Context, tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO considerations (name, age, date_met, overall_notes, author_email, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, form.BasicInfo.Name, basic.age, basic.dateMet, basic.notes, author, now, now).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert considerations: %w", err)
		}

		values := formValues(&form)
		for i, kind := range assessmentKinds {
			args := append([]any{id}, values[i]...)
			if _, err := tx.ExecContext(ctx, kind.insertSQL(), args...); err != nil {
				return fmt.Errorf("insert %s: %w", kind.table, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListConsiderations returns every record owned by authorEmail, newest first
// unless opts asks for the rating view.
func (s *Store) ListConsiderations(ctx context.Context, authorEmail string, opts ListOptions) ([]models.Consideration, error) {
	author, err := auth.NormalizeEmail(authorEmail)
	if err != nil {
		return nil, err
	}
	if opts.Sort == "" {
		opts.Sort = models.SortRecent
	}
	if opts.Sort != models.SortRecent && opts.Sort != models.SortRating {
		return nil, &ValidationError{Field: "sort", Message: "sort must be recent or rating"}
	}
	if opts.Limit < 0 {
		return nil, &ValidationError{Field: "limit", Message: "limit must be positive"}
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectConsiderationsSQL+`
		WHERE c.author_email = $1
		ORDER BY c.created_at DESC, c.id DESC
	`, author)
	if err != nil {
		return nil, &PersistenceError{Op: "list considerations", Err: err}
	}
	defer rows.Close()

	now := time.Now()
	considerations := []models.Consideration{}
	for rows.Next() {
		c, err := scanConsideration(rows, now)
		if err != nil {
			return nil, &PersistenceError{Op: "list considerations", Err: err}
		}
		considerations = append(considerations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list considerations", Err: err}
	}

	if opts.Sort == models.SortRating {
		// Stable keeps newest-first among equal averages
		sort.SliceStable(considerations, func(i, j int) bool {
			return ratingKey(considerations[i]) > ratingKey(considerations[j])
		})
	}
	if opts.Limit > 0 && len(considerations) > opts.Limit {
		considerations = considerations[:opts.Limit]
	}

	return considerations, nil
}

func ratingKey(c models.Consideration) float64 {
	if c.AverageRating == nil {
		return -1
	}
	return *c.AverageRating
}

// GetConsideration returns one record if it exists and belongs to authorEmail.
func (s *Store) GetConsideration(ctx context.Context, id int64, authorEmail string) (models.Consideration, error) {
	author, err := auth.NormalizeEmail(authorEmail)
	if err != nil {
		return models.Consideration{}, err
	}

	ctx, cancel := s.bounded(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, selectConsiderationsSQL+`
		WHERE c.author_email = $1 AND c.id = $2
	`, author, id)

	c, err := scanConsideration(row, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return models.Consideration{}, ErrNotFound
	}
	if err != nil {
		return models.Consideration{}, &PersistenceError{Op: "get consideration", Err: err}
	}

	return c, nil
}

// DeleteConsideration removes a record and its assessments after checking
// ownership. A record that is missing, owned by someone else, or removed by a
// concurrent delete all report ErrNotFound.
func (s *Store) DeleteConsideration(ctx context.Context, id int64, authorEmail string) error {
	author, err := auth.NormalizeEmail(authorEmail)
	if err != nil {
		return err
	}

	return s.withTx(ctx, "delete consideration", func(ctx context.Context, tx *sql.Tx) error {
		var owned int64
		err := tx.QueryRowContext(ctx, `
			SELECT id FROM considerations WHERE id = $1 AND author_email = $2
		`, id, author).Scan(&owned)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check ownership: %w", err)
		}

		for _, kind := range assessmentKinds {
			if _, err := tx.ExecContext(ctx, kind.deleteSQL(), id); err != nil {
				return fmt.Errorf("delete %s: %w", kind.table, err)
			}
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM considerations WHERE id = $1 AND author_email = $2
		`, id, author)
		if err != nil {
			return fmt.Errorf("delete considerations: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete considerations: %w", err)
		}
		// Another transaction won the race after our ownership check
		if n == 0 {
			return ErrNotFound
		}

		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsideration(row rowScanner, now time.Time) (models.Consideration, error) {
	var c models.Consideration
	var dateMet sql.NullTime

	dest := []any{&c.ID, &c.Name, &c.Age, &dateMet, &c.OverallNotes, &c.AuthorEmail, &c.CreatedAt, &c.UpdatedAt}
	for _, targets := range recordTargets(&c) {
		dest = append(dest, targets...)
	}

	if err := row.Scan(dest...); err != nil {
		return models.Consideration{}, err
	}

	if dateMet.Valid {
		d := dateMet.Time.Format(models.DateLayout)
		c.DateMet = &d
	}
	c.CreatedAgo = humanize.RelTime(c.CreatedAt, now, "ago", "from now")
	c.AverageRating = averageRating(&c)

	return c, nil
}
