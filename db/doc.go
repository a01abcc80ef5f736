// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connection setup and schema creation.

# Connecting

Open returns a pinged pool for either supported dialect:

	conn, err := db.Open(ctx, db.Postgres, "postgres://...", 10)
	conn, err := db.Open(ctx, db.SQLite, "file:vault.db", 1)

SQLite connections enable foreign keys and a busy timeout, and are limited to
one open connection so concurrent transactions queue rather than fail.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: Signed-in accounts, unique by email
  - considerations: One row per record, owned by author_email
  - faith_assessments, character_assessments, children_assessments,
    friendship_assessments, family_assessments, business_assessments,
    roommate_assessments, physical_assessments: One row each per consideration

# Relationships

	considerations 1──1 <kind>_assessments (UNIQUE consideration_id)

Foreign keys do not cascade. Deleting a consideration removes its assessment
rows explicitly inside the same transaction.
*/
package db
