// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/middleware"
	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/stats"
	"github.com/danielhkuo/council-watch/store"
)

type VotesHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotesHandler(db *sql.DB, cfg cliparse.Config) *VotesHandler {
	return &VotesHandler{store: store.New(db), cfg: cfg}
}

// List handles GET /votes
// Query params: search, category, member, outcome, limit.
// Returns the filtered enriched records (most recent first) together with
// the statistics of the whole filtered set; limit caps the record list
// only, not the statistics.
func (h *VotesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := models.FilterCriteria{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Member:   q.Get("member"),
		Outcome:  q.Get("outcome"),
	}
	if criteria.Outcome != "" && !models.ValidOutcome(criteria.Outcome) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "outcome must be YEA, NAY, ABSTAIN, or ABSENT")
		return
	}

	limit := 0
	if limitParam := q.Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	// The dataset is hundreds of rows; fetch once and filter in memory so
	// search/category/member semantics live in one place.
	records, err := h.store.ListVoteRecords(store.VoteQuery{})
	if err != nil {
		slog.Error("failed to query vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	filtered := stats.ApplyFilters(records, criteria)
	summary := stats.ComputeStats(filtered)

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotesResponse{
		Records: filtered,
		Stats:   summary,
	})
}
