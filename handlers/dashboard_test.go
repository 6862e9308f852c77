// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/testutil"
)

func TestDashboardOverview(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewDashboardHandler(conn, cfg)

	t.Run("empty database yields zero stats", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/overview", nil)
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.Stats
		testutil.AssertJSON(t, w, &stats)
		if stats != (models.Stats{}) {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	janeID := testutil.CreateTestMember(t, conn, "Jane Doe", "Mayor", true)
	meetingID := testutil.CreateTestMeeting(t, conn, "2025-03-06", "March Meeting")
	item := testutil.AddTestAgendaItem(t, conn, meetingID, "Housing project", "housing")
	at := time.Date(2025, 3, 6, 19, 0, 0, 0, time.UTC)
	testutil.CastTestVote(t, conn, item, janeID, models.OutcomeYea, at)

	t.Run("tallies recorded votes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/stats/overview", nil)
		w := httptest.NewRecorder()

		handler.Overview(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.Stats
		testutil.AssertJSON(t, w, &stats)
		want := models.Stats{Total: 1, Yea: 1, YeaPct: 100}
		if stats != want {
			t.Errorf("stats = %+v, want %+v", stats, want)
		}
	})
}

func TestDashboardCategories(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewDashboardHandler(conn, cfg)

	janeID := testutil.CreateTestMember(t, conn, "Jane Doe", "Mayor", true)
	samID := testutil.CreateTestMember(t, conn, "Sam Lee", "Council Member", true)

	meetingID := testutil.CreateTestMeeting(t, conn, "2025-03-06", "March Meeting")
	housing := testutil.AddTestAgendaItem(t, conn, meetingID, "Housing project", "housing")
	budget := testutil.AddTestAgendaItem(t, conn, meetingID, "Budget approval", "budget")
	uncategorized := testutil.AddTestAgendaItem(t, conn, meetingID, "Public comment rules", "")

	at := time.Date(2025, 3, 6, 19, 0, 0, 0, time.UTC)
	testutil.CastTestVote(t, conn, housing, janeID, models.OutcomeYea, at)
	testutil.CastTestVote(t, conn, housing, samID, models.OutcomeYea, at.Add(time.Minute))
	testutil.CastTestVote(t, conn, budget, janeID, models.OutcomeNay, at.Add(2*time.Minute))
	testutil.CastTestVote(t, conn, uncategorized, samID, models.OutcomeAbstain, at.Add(3*time.Minute))

	req := httptest.NewRequest("GET", "/stats/categories", nil)
	w := httptest.NewRecorder()

	handler.Categories(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var breakdown []models.CategoryStats
	testutil.AssertJSON(t, w, &breakdown)
	if len(breakdown) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(breakdown))
	}

	// Sorted descending by total; housing has the most votes.
	if breakdown[0].Category != "housing" || breakdown[0].Stats.Total != 2 {
		t.Errorf("expected housing first with 2 votes, got %+v", breakdown[0])
	}

	// The uncategorized item lands under Unknown.
	foundUnknown := false
	total := 0
	for _, cs := range breakdown {
		total += cs.Stats.Total
		if cs.Category == models.UnknownCategory {
			foundUnknown = true
		}
	}
	if !foundUnknown {
		t.Error("expected an Unknown category group")
	}
	if total != 4 {
		t.Errorf("category totals should partition all votes, got %d", total)
	}
}

func TestDashboardCaseStudies(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewDashboardHandler(conn, cfg)

	janeID := testutil.CreateTestMember(t, conn, "Jane Doe", "Mayor", true)
	samID := testutil.CreateTestMember(t, conn, "Sam Lee", "Council Member", true)

	meetingID := testutil.CreateTestMeeting(t, conn, "2025-03-06", "March Meeting")
	tied := testutil.AddTestAgendaItem(t, conn, meetingID, "Pearl Street rezoning", "housing")
	passed := testutil.AddTestAgendaItem(t, conn, meetingID, "Budget approval", "budget")

	at := time.Date(2025, 3, 6, 19, 0, 0, 0, time.UTC)
	// 1 YEA / 1 NAY: denied, low impact
	testutil.CastTestVote(t, conn, tied, janeID, models.OutcomeYea, at)
	testutil.CastTestVote(t, conn, tied, samID, models.OutcomeNay, at.Add(time.Minute))
	// 2 YEA: approved
	testutil.CastTestVote(t, conn, passed, janeID, models.OutcomeYea, at.Add(2*time.Minute))
	testutil.CastTestVote(t, conn, passed, samID, models.OutcomeYea, at.Add(3*time.Minute))

	t.Run("derives outcomes and orders by recency", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/case-studies", nil)
		w := httptest.NewRecorder()

		handler.CaseStudies(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CaseStudiesResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.CaseStudies) != 2 {
			t.Fatalf("expected 2 case studies, got %d", len(resp.CaseStudies))
		}

		first := resp.CaseStudies[0]
		if first.AgendaTitle != "Budget approval" {
			t.Errorf("expected most recently voted item first, got %q", first.AgendaTitle)
		}
		if first.Outcome != models.CaseOutcomeApproved {
			t.Errorf("budget outcome = %q, want Approved", first.Outcome)
		}

		second := resp.CaseStudies[1]
		if second.Outcome != models.CaseOutcomeDenied {
			t.Errorf("tied vote outcome = %q, want Denied", second.Outcome)
		}
		if second.ImpactLevel != models.ImpactLow {
			t.Errorf("2-vote item impact = %q, want low", second.ImpactLevel)
		}
	})

	t.Run("limit caps the list", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/case-studies?limit=1", nil)
		w := httptest.NewRecorder()

		handler.CaseStudies(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CaseStudiesResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.CaseStudies) != 1 {
			t.Fatalf("expected 1 case study, got %d", len(resp.CaseStudies))
		}
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/case-studies?limit=x", nil)
		w := httptest.NewRecorder()

		handler.CaseStudies(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
