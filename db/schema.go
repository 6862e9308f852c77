// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is deliberately portable across PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Council members
CREATE TABLE IF NOT EXISTS member (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    seat TEXT NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT TRUE,
    bio TEXT NOT NULL DEFAULT '',
    photo_url TEXT,
    committees TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_member_name ON member(name);
CREATE INDEX IF NOT EXISTS idx_member_active ON member(active);

-- Meetings
CREATE TABLE IF NOT EXISTS meeting (
    id TEXT PRIMARY KEY,
    date DATE NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    agenda_url TEXT,
    minutes_url TEXT,
    video_url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_meeting_date ON meeting(date);

-- Agenda items
CREATE TABLE IF NOT EXISTS agenda_item (
    id TEXT PRIMARY KEY,
    meeting_id TEXT NOT NULL REFERENCES meeting(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_agenda_item_meeting_id ON agenda_item(meeting_id);
CREATE INDEX IF NOT EXISTS idx_agenda_item_category ON agenda_item(category);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    agenda_item_id TEXT NOT NULL REFERENCES agenda_item(id) ON DELETE CASCADE,
    member_id TEXT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    outcome TEXT NOT NULL CHECK (outcome IN ('YEA', 'NAY', 'ABSTAIN', 'ABSENT')),
    source_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_vote_agenda_item_id ON vote(agenda_item_id);
CREATE INDEX IF NOT EXISTS idx_vote_member_id ON vote(member_id);
CREATE INDEX IF NOT EXISTS idx_vote_created_at ON vote(created_at);
`
