// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite file (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - TxTimeout: Deadline for one database operation (default: 10s)
  - MaxOpenConns: Connection pool size (default: 10, always 1 for SQLite)

# CLI Flags

	-env        dotenv file to load (default: .env)
	-p          Server port
	-d          Database URL
	-t          Database type
	-tx-timeout Per-operation deadline
	-max-conns  Pool size

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	TX_TIMEOUT        → -tx-timeout
	DB_MAX_OPEN_CONNS → -max-conns

CLI flags take precedence over environment variables, and variables already
set in the process take precedence over the dotenv file. A missing dotenv
file is not an error.

# Validation

ParseFlags returns an error when:

  - DATABASE_URL is not provided
  - DATABASE_TYPE is neither sqlite nor postgres
  - PORT, TX_TIMEOUT or DB_MAX_OPEN_CONNS cannot be parsed
*/
package cliparse
