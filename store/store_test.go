// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/council-watch/db"
	"github.com/danielhkuo/council-watch/models"
)

// setupTestDB opens a fresh in-memory SQLite database with the schema.
// Local rather than testutil to keep this package free of import cycles.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

func mustInsertMember(t *testing.T, st *Store, id, name, seat string, active bool) {
	t.Helper()
	err := st.InsertMember(models.Member{
		ID: id, Name: name, Seat: seat, Active: active,
		Committees: []string{"Finance"},
	})
	if err != nil {
		t.Fatalf("InsertMember failed: %v", err)
	}
}

func TestMemberRoundTrip(t *testing.T) {
	st := New(setupTestDB(t))

	mustInsertMember(t, st, "m-1", "Jane Doe", "Mayor", true)
	mustInsertMember(t, st, "m-2", "Sam Lee", "Council Member", false)

	got, err := st.GetMember("m-1")
	if err != nil {
		t.Fatalf("GetMember failed: %v", err)
	}
	want := models.Member{
		ID: "m-1", Name: "Jane Doe", Seat: "Mayor", Active: true,
		Committees: []string{"Finance"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("member mismatch (-want +got):\n%s", diff)
	}

	if _, err := st.GetMember("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Active filter and name ordering
	all, err := st.ListMembers(false)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Jane Doe" {
		t.Errorf("expected 2 members ordered by name, got %+v", all)
	}

	active, err := st.ListMembers(true)
	if err != nil {
		t.Fatalf("ListMembers(active) failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != "m-1" {
		t.Errorf("expected only the active member, got %+v", active)
	}
}

func TestFindMemberByName(t *testing.T) {
	st := New(setupTestDB(t))
	mustInsertMember(t, st, "m-1", "Jane Doe", "Mayor", true)

	m, err := st.FindMemberByName("Jane Doe")
	if err != nil {
		t.Fatalf("FindMemberByName failed: %v", err)
	}
	if m.ID != "m-1" {
		t.Errorf("found wrong member: %+v", m)
	}

	if _, err := st.FindMemberByName("Nobody"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMeetingsAndAgendaItems(t *testing.T) {
	st := New(setupTestDB(t))

	jan := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	agendaURL := "https://example.org/agenda.pdf"

	for _, m := range []models.Meeting{
		{ID: "mt-1", Date: jan, Title: "January Meeting"},
		{ID: "mt-2", Date: mar, Title: "March Meeting", AgendaURL: &agendaURL},
	} {
		if err := st.InsertMeeting(m); err != nil {
			t.Fatalf("InsertMeeting failed: %v", err)
		}
	}

	meetings, err := st.ListMeetings(time.Time{})
	if err != nil {
		t.Fatalf("ListMeetings failed: %v", err)
	}
	if len(meetings) != 2 || meetings[0].ID != "mt-2" {
		t.Errorf("expected most recent meeting first, got %+v", meetings)
	}

	byDate, err := st.ListMeetings(jan)
	if err != nil {
		t.Fatalf("ListMeetings(date) failed: %v", err)
	}
	if len(byDate) != 1 || byDate[0].ID != "mt-1" {
		t.Errorf("date filter failed, got %+v", byDate)
	}

	got, err := st.GetMeeting("mt-2")
	if err != nil {
		t.Fatalf("GetMeeting failed: %v", err)
	}
	if got.AgendaURL == nil || *got.AgendaURL != agendaURL {
		t.Errorf("agenda URL lost in round trip: %+v", got)
	}

	item := models.AgendaItem{
		ID: "a-1", MeetingID: "mt-2",
		Title: "Housing project", Category: "housing", Tags: []string{"zoning"},
	}
	if err := st.InsertAgendaItem(item); err != nil {
		t.Fatalf("InsertAgendaItem failed: %v", err)
	}

	items, err := st.ListAgendaItems("mt-2")
	if err != nil {
		t.Fatalf("ListAgendaItems failed: %v", err)
	}
	if diff := cmp.Diff([]models.AgendaItem{item}, items); diff != "" {
		t.Errorf("agenda items mismatch (-want +got):\n%s", diff)
	}

	found, err := st.FindAgendaItem("mt-2", "Housing project")
	if err != nil {
		t.Fatalf("FindAgendaItem failed: %v", err)
	}
	if found.ID != "a-1" {
		t.Errorf("found wrong item: %+v", found)
	}
}

func TestListVoteRecords(t *testing.T) {
	st := New(setupTestDB(t))

	mustInsertMember(t, st, "m-1", "Jane Doe", "Mayor", true)
	mustInsertMember(t, st, "m-2", "Sam Lee", "Council Member", true)

	date := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	if err := st.InsertMeeting(models.Meeting{ID: "mt-1", Date: date, Title: "March Meeting"}); err != nil {
		t.Fatalf("InsertMeeting failed: %v", err)
	}
	if err := st.InsertAgendaItem(models.AgendaItem{
		ID: "a-1", MeetingID: "mt-1", Title: "Housing project",
		Category: "housing", Tags: []string{"zoning"},
	}); err != nil {
		t.Fatalf("InsertAgendaItem failed: %v", err)
	}

	base := date.Add(19 * time.Hour)
	votes := []models.Vote{
		{ID: "v-1", AgendaItemID: "a-1", MemberID: "m-1", Outcome: models.OutcomeYea, CreatedAt: base},
		{ID: "v-2", AgendaItemID: "a-1", MemberID: "m-2", Outcome: models.OutcomeNay, CreatedAt: base.Add(time.Minute)},
	}
	for _, v := range votes {
		if err := st.InsertVote(v); err != nil {
			t.Fatalf("InsertVote failed: %v", err)
		}
	}

	records, err := st.ListVoteRecords(VoteQuery{})
	if err != nil {
		t.Fatalf("ListVoteRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Most recent first
	if records[0].VoteID != "v-2" {
		t.Errorf("expected v-2 first, got %s", records[0].VoteID)
	}

	// Enrichment joins all three related rows
	rec := records[1]
	if rec.MemberName != "Jane Doe" || rec.AgendaTitle != "Housing project" ||
		rec.Category != "housing" || rec.MeetingID != "mt-1" {
		t.Errorf("record not fully enriched: %+v", rec)
	}
	if diff := cmp.Diff([]string{"zoning"}, rec.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	// Member filter
	own, err := st.ListVoteRecords(VoteQuery{MemberID: "m-1"})
	if err != nil {
		t.Fatalf("ListVoteRecords(member) failed: %v", err)
	}
	if len(own) != 1 || own[0].VoteID != "v-1" {
		t.Errorf("member filter failed: %+v", own)
	}

	// Meeting filter with limit
	capped, err := st.ListVoteRecords(VoteQuery{MeetingID: "mt-1", Limit: 1})
	if err != nil {
		t.Fatalf("ListVoteRecords(meeting) failed: %v", err)
	}
	if len(capped) != 1 {
		t.Errorf("limit failed: got %d records", len(capped))
	}
}

func TestListVoteRecordsBrokenJoin(t *testing.T) {
	st := New(setupTestDB(t))
	conn := st.db

	// A vote whose agenda item does not exist still appears, degraded.
	// Foreign keys are off by default in SQLite, matching how bad rows
	// arrive from legacy data.
	mustInsertMember(t, st, "m-1", "Jane Doe", "Mayor", true)
	_, err := conn.Exec(`
		INSERT INTO vote (id, agenda_item_id, member_id, outcome, created_at)
		VALUES ('v-1', 'missing-item', 'm-1', 'YEA', $1)
	`, time.Date(2025, 3, 6, 19, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	records, err := st.ListVoteRecords(VoteQuery{})
	if err != nil {
		t.Fatalf("ListVoteRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected the orphan vote to survive, got %d records", len(records))
	}
	rec := records[0]
	if rec.AgendaTitle != "" || rec.Category != "" {
		t.Errorf("orphan vote should have zeroed join fields: %+v", rec)
	}
	if len(rec.Tags) != 0 {
		t.Errorf("orphan vote tags should be empty, got %#v", rec.Tags)
	}
	if rec.MemberName != "Jane Doe" {
		t.Errorf("member join should still resolve: %+v", rec)
	}
}
