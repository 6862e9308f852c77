// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseURL: Database connection string or SQLite path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - IngestKeySalt: Secret for ingest key HMAC (required)
  - SeedFile: YAML fixture loaded at startup (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-seed         Seed fixture path
	-ingest-salt  Ingest key salt

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SEED_FILE       → -seed
	INGEST_KEY_SALT → -ingest-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - INGEST_KEY_SALT must be provided
*/
package cliparse
