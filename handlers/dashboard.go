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

type DashboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{store: store.New(db), cfg: cfg}
}

// Overview handles GET /stats/overview
// Returns outcome tallies and percentages across all recorded votes
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListVoteRecords(store.VoteQuery{})
	if err != nil {
		slog.Error("failed to query vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats.ComputeStats(records))
}

// Categories handles GET /stats/categories
// Returns per-category statistics sorted descending by vote count
func (h *DashboardHandler) Categories(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListVoteRecords(store.VoteQuery{})
	if err != nil {
		slog.Error("failed to query vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	breakdown := stats.ComputeCategoryBreakdown(records)
	stats.SortByTotal(breakdown)

	middleware.JSONResponse(w, http.StatusOK, breakdown)
}

// CaseStudies handles GET /case-studies
// ?limit=N caps the number of case studies returned (default: all)
func (h *DashboardHandler) CaseStudies(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	records, err := h.store.ListVoteRecords(store.VoteQuery{})
	if err != nil {
		slog.Error("failed to query vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CaseStudiesResponse{
		CaseStudies: stats.BuildCaseStudies(records, limit),
	})
}
