// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/middleware"
	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/stats"
	"github.com/danielhkuo/council-watch/store"
)

type MembersHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewMembersHandler(db *sql.DB, cfg cliparse.Config) *MembersHandler {
	return &MembersHandler{store: store.New(db), cfg: cfg}
}

// List handles GET /members
// ?active=true restricts to currently seated members
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	members, err := h.store.ListMembers(activeOnly)
	if err != nil {
		slog.Error("failed to list members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, members)
}

// Get handles GET /members/:id
// Returns the member profile with their full voting statistics
func (h *MembersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	member, err := h.store.GetMember(id)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
		return
	}
	if err != nil {
		slog.Error("failed to query member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	records, err := h.store.ListVoteRecords(store.VoteQuery{MemberID: id})
	if err != nil {
		slog.Error("failed to query member votes", "error", err, "member_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MemberProfileResponse{
		Member: member,
		Stats:  stats.ComputeStats(records),
	})
}

// Compare handles GET /members/compare?ids=a,b,c
// Returns side-by-side voting statistics for the comparative dashboard
func (h *MembersHandler) Compare(w http.ResponseWriter, r *http.Request) {
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ids is required (comma-separated member IDs)")
		return
	}

	var ids []string
	for _, id := range strings.Split(idsParam, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least two member IDs required")
		return
	}

	// One fetch for all records; the per-member reduction is in-memory.
	records, err := h.store.ListVoteRecords(store.VoteQuery{})
	if err != nil {
		slog.Error("failed to query vote records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	comparisons := make([]models.MemberComparison, 0, len(ids))
	for _, id := range ids {
		member, err := h.store.GetMember(id)
		if err == store.ErrNotFound {
			middleware.ErrorResponse(w, http.StatusNotFound, "Member not found: "+id)
			return
		}
		if err != nil {
			slog.Error("failed to query member", "error", err, "member_id", id)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		comparisons = append(comparisons, models.MemberComparison{
			Member: member,
			Stats:  stats.ComputeMemberStats(records, id),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.CompareMembersResponse{
		Members: comparisons,
	})
}
