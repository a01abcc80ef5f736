// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the consideration vault API server.

The vault lets a signed-in user record structured assessments of people they
are considering as a spouse. Each record is basic information plus eight
rated assessments (faith, character, children, friendship, family and friends,
business partner, roommate, physical attraction), stored atomically and only
ever visible to the email that wrote it.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:vault.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite file

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TX_TIMEOUT (-tx-timeout): Per-operation deadline (default: 10s)
  - DB_MAX_OPEN_CONNS (-max-conns): Pool size, PostgreSQL only (default: 10)

# Architecture

  - handlers: HTTP request handlers (considerations, users)
  - router: Route definitions using Go 1.22+ routing
  - store: Transactions, validation and record assembly
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus request and transaction counters
  - models: Request/response types
  - auth: Identity normalization and user ids
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
