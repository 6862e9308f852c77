// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/db"
	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory database lives on a single connection.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		IngestKeySalt: "test-ingest-salt",
	}
}

// CreateTestMember inserts a member and returns its ID
func CreateTestMember(t *testing.T, conn *sql.DB, name, seat string, active bool) string {
	t.Helper()

	id := uuid.NewString()
	err := store.New(conn).InsertMember(models.Member{
		ID:         id,
		Name:       name,
		Seat:       seat,
		Active:     active,
		Committees: []string{},
	})
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}
	return id
}

// CreateTestMeeting inserts a meeting on the given date (YYYY-MM-DD)
func CreateTestMeeting(t *testing.T, conn *sql.DB, date, title string) string {
	t.Helper()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Invalid test meeting date %q: %v", date, err)
	}

	id := uuid.NewString()
	err = store.New(conn).InsertMeeting(models.Meeting{
		ID:    id,
		Date:  day,
		Title: title,
	})
	if err != nil {
		t.Fatalf("Failed to create test meeting: %v", err)
	}
	return id
}

// AddTestAgendaItem inserts an agenda item and returns its ID
func AddTestAgendaItem(t *testing.T, conn *sql.DB, meetingID, title, category string, tags ...string) string {
	t.Helper()

	id := uuid.NewString()
	err := store.New(conn).InsertAgendaItem(models.AgendaItem{
		ID:        id,
		MeetingID: meetingID,
		Title:     title,
		Category:  category,
		Tags:      tags,
	})
	if err != nil {
		t.Fatalf("Failed to create test agenda item: %v", err)
	}
	return id
}

// CastTestVote inserts a vote and returns its ID
func CastTestVote(t *testing.T, conn *sql.DB, agendaItemID, memberID, outcome string, at time.Time) string {
	t.Helper()

	id := uuid.NewString()
	err := store.New(conn).InsertVote(models.Vote{
		ID:           id,
		AgendaItemID: agendaItemID,
		MemberID:     memberID,
		Outcome:      outcome,
		CreatedAt:    at,
	})
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
