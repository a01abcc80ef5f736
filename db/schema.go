// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Tables lists every table in dependency order (parents first).
var Tables = []string{
	"users",
	"considerations",
	"faith_assessments",
	"character_assessments",
	"children_assessments",
	"friendship_assessments",
	"family_assessments",
	"business_assessments",
	"roommate_assessments",
	"physical_assessments",
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	idColumn := "SERIAL PRIMARY KEY"
	if dialect == SQLite {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	_, err := db.Exec(fmt.Sprintf(schema, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table, children first.
func DropSchema(db *sql.DB) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + Tables[i]); err != nil {
			return fmt.Errorf("failed to drop %s: %w", Tables[i], err)
		}
	}
	return nil
}

const schema = `
-- Users (upserted by the sign-in flow)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    image TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Considerations
CREATE TABLE IF NOT EXISTS considerations (
    id %s,
    name TEXT NOT NULL CHECK (name <> ''),
    age INTEGER CHECK (age > 0),
    date_met DATE,
    overall_notes TEXT,
    author_email TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_considerations_author ON considerations(author_email, created_at);

-- Assessments: exactly one row of each kind per consideration
CREATE TABLE IF NOT EXISTS faith_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    is_catholic BOOLEAN,
    practices_faith INTEGER,
    shared_moral_values INTEGER,
    helps_get_to_heaven INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS character_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    friendly INTEGER,
    happy INTEGER,
    polite INTEGER,
    proud INTEGER,
    discretion INTEGER,
    charitable INTEGER,
    humble INTEGER,
    kind INTEGER,
    positive_attitude INTEGER,
    courageous INTEGER,
    self_effacing INTEGER,
    traditional_values INTEGER,
    political_alignment INTEGER,
    dating_history TEXT,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS children_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    wants_children BOOLEAN,
    number_of_children TEXT,
    will_raise_catholic BOOLEAN,
    likes_children INTEGER,
    children_gravitate INTEGER,
    nurturing INTEGER,
    excited_about_babies INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS friendship_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    fun INTEGER,
    shared_interests INTEGER,
    adventurous INTEGER,
    outdoorsy INTEGER,
    curious INTEGER,
    creative INTEGER,
    conversation INTEGER,
    communication INTEGER,
    conflict_resolution INTEGER,
    unselfish INTEGER,
    enjoyable_company INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS family_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    solid_family_background INTEGER,
    parents_marital_status TEXT,
    family_values INTEGER,
    family_functioning INTEGER,
    sibling_relationships INTEGER,
    enjoy_family INTEGER,
    friend_group INTEGER,
    gets_along_with_your_family INTEGER,
    gets_along_with_your_friends INTEGER,
    possessive INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS business_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    saver INTEGER,
    wasteful INTEGER,
    maintenance INTEGER,
    willing_to_sacrifice INTEGER,
    risk_taker INTEGER,
    debt TEXT,
    financial_responsibility INTEGER,
    self_starter INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS roommate_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    tidiness INTEGER,
    dishes INTEGER,
    personal_space INTEGER,
    housekeeping INTEGER,
    shares_burden INTEGER,
    notes TEXT
);

CREATE TABLE IF NOT EXISTS physical_assessments (
    consideration_id INTEGER NOT NULL UNIQUE REFERENCES considerations(id),
    attraction INTEGER,
    fitness INTEGER,
    health_conscious INTEGER,
    hygiene INTEGER,
    family_longevity INTEGER,
    notes TEXT
);
`
