// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Council Watch API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - MembersHandler: Member listing, profiles, comparison
  - MeetingsHandler: Meeting listing and agenda retrieval
  - VotesHandler: The filtered vote feed
  - DashboardHandler: Aggregate statistics and case studies
  - IngestHandler: Authenticated vote ingestion for scrapers

Handlers are created via constructor functions that accept *sql.DB and Config:

	membersHandler := handlers.NewMembersHandler(db, cfg)

# Read Endpoints

All dashboard data is read-only:

	GET /members                → List (?active=true)
	GET /members/{id}           → Get (profile + voting stats)
	GET /members/compare        → Compare (?ids=a,b,c)
	GET /meetings               → List (?date=YYYY-MM-DD)
	GET /meetings/{id}          → Get (meeting + agenda items)
	GET /votes                  → List (?search=&category=&member=&outcome=&limit=)
	GET /stats/overview         → Overview
	GET /stats/categories       → Categories
	GET /case-studies           → CaseStudies (?limit=N)

The handlers fetch enriched vote records through the store and delegate
every computation to the stats package; no aggregation logic lives here.

# Ingestion

Scrapers push vote batches through one authenticated endpoint:

	POST /ingest/votes

Requires X-Ingest-Source and X-Ingest-Key headers (see the auth package).
Each row resolves its member by exact name and creates the meeting and
agenda item on first sight; malformed rows are reported in the response's
skipped list without failing the batch.
*/
package handlers
