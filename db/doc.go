// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL avoids engine-specific syntax so the same schema runs on PostgreSQL
(hosted deployments) and SQLite (local development and tests).

# Tables

The schema includes:

  - member: Council member identity, seat, bio, committees
  - meeting: Dated meetings with optional document links
  - agenda_item: Matters considered at a meeting, with category and tags
  - vote: One member's recorded outcome on one agenda item

# Relationships

	meeting 1──* agenda_item 1──* vote *──1 member

All foreign keys use ON DELETE CASCADE.

# Notes

Committees and tags are stored as JSON-encoded TEXT columns; the store
package encodes and decodes them. The vote.outcome column is CHECK
constrained to the four recognized outcomes.

# Indexes

Performance indexes on:

  - member.name
  - member.active
  - meeting.date
  - agenda_item.meeting_id
  - agenda_item.category
  - vote.agenda_item_id
  - vote.member_id
  - vote.created_at
*/
package db
