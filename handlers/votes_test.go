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

func TestListVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotesHandler(conn, cfg)

	janeID := testutil.CreateTestMember(t, conn, "Jane Doe", "Mayor", true)
	samID := testutil.CreateTestMember(t, conn, "Sam Lee", "Council Member", true)

	meetingID := testutil.CreateTestMeeting(t, conn, "2025-03-06", "March Meeting")
	housing := testutil.AddTestAgendaItem(t, conn, meetingID, "Housing project", "Housing", "Affordable Housing")
	budget := testutil.AddTestAgendaItem(t, conn, meetingID, "Budget approval", "budget")

	at := time.Date(2025, 3, 6, 19, 0, 0, 0, time.UTC)
	testutil.CastTestVote(t, conn, housing, janeID, models.OutcomeYea, at)
	testutil.CastTestVote(t, conn, housing, samID, models.OutcomeNay, at.Add(time.Minute))
	testutil.CastTestVote(t, conn, budget, janeID, models.OutcomeYea, at.Add(2*time.Minute))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.VotesResponse)
	}{
		{
			name:           "no filters returns everything most recent first",
			path:           "/votes",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.VotesResponse) {
				if len(resp.Records) != 3 {
					t.Fatalf("expected 3 records, got %d", len(resp.Records))
				}
				if resp.Records[0].AgendaTitle != "Budget approval" {
					t.Errorf("expected most recent vote first, got %q", resp.Records[0].AgendaTitle)
				}
				want := models.Stats{Total: 3, Yea: 2, Nay: 1, YeaPct: 67, NayPct: 33}
				if resp.Stats != want {
					t.Errorf("stats = %+v, want %+v", resp.Stats, want)
				}
			},
		},
		{
			name:           "search matches category case-insensitively",
			path:           "/votes?search=housing",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.VotesResponse) {
				if len(resp.Records) != 2 {
					t.Fatalf("expected 2 records, got %d", len(resp.Records))
				}
			},
		},
		{
			name:           "member and outcome AND together",
			path:           "/votes?member=jane&outcome=YEA",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.VotesResponse) {
				if len(resp.Records) != 2 {
					t.Fatalf("expected 2 records, got %d", len(resp.Records))
				}
				for _, rec := range resp.Records {
					if rec.MemberName != "Jane Doe" || rec.Outcome != models.OutcomeYea {
						t.Errorf("filter leak: %+v", rec)
					}
				}
			},
		},
		{
			name:           "limit caps records but not stats",
			path:           "/votes?limit=1",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.VotesResponse) {
				if len(resp.Records) != 1 {
					t.Fatalf("expected 1 record, got %d", len(resp.Records))
				}
				if resp.Stats.Total != 3 {
					t.Errorf("stats should cover the whole filtered set, got total %d", resp.Stats.Total)
				}
			},
		},
		{
			name:           "no matches yields empty records and zero stats",
			path:           "/votes?search=parking",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.VotesResponse) {
				if len(resp.Records) != 0 {
					t.Fatalf("expected no records, got %d", len(resp.Records))
				}
				if resp.Stats != (models.Stats{}) {
					t.Errorf("expected zero stats, got %+v", resp.Stats)
				}
			},
		},
		{
			name:           "invalid outcome rejected",
			path:           "/votes?outcome=MAYBE",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid limit rejected",
			path:           "/votes?limit=-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.VotesResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}
