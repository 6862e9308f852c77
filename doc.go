// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Council Watch API server.

Council Watch is a civic transparency service that tracks city council
voting records and serves filtered vote listings, aggregate statistics,
member profiles and comparisons, and case studies of contested agenda
items.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3324 -d "postgres://..."

For local development a file-backed SQLite database works too:

	go run main.go -t sqlite -d council.db -seed fixtures/boulder.yaml

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string or SQLite path
  - INGEST_KEY_SALT (--ingest-salt): Secret for scraper ingest key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: postgres)
  - SEED_FILE (-seed): YAML fixture loaded at startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (members, meetings, votes, dashboard, ingest)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - stats: Pure filtering, aggregation, and case-study engine
  - store: Database queries over the relational schema
  - auth: Ingest key generation and validation
  - db: Schema creation
  - seed: YAML fixture loading
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
