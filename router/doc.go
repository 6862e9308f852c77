// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Council Watch API.

# Routes

NewRouter wires all handlers onto a standard ServeMux using Go 1.22+
method and pattern routing:

	mux := router.NewRouter(db, cfg)

Dashboard reads:

	GET /health
	GET /members
	GET /members/compare
	GET /members/{id}
	GET /meetings
	GET /meetings/{id}
	GET /votes
	GET /stats/overview
	GET /stats/categories
	GET /case-studies

Ingestion:

	POST /ingest/votes

All routes except /health and / are wrapped with request logging. CORS is
applied to the whole mux in main, not per route.
*/
package router
