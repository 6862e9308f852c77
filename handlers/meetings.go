// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/middleware"
	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/store"
)

type MeetingsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewMeetingsHandler(db *sql.DB, cfg cliparse.Config) *MeetingsHandler {
	return &MeetingsHandler{store: store.New(db), cfg: cfg}
}

// List handles GET /meetings
// Most recent first; ?date=YYYY-MM-DD filters to one calendar date
func (h *MeetingsHandler) List(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	meetings, err := h.store.ListMeetings(date)
	if err != nil {
		slog.Error("failed to list meetings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, meetings)
}

// Get handles GET /meetings/:id
// Returns the meeting and its agenda items
func (h *MeetingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	meeting, err := h.store.GetMeeting(id)
	if err == store.ErrNotFound {
		middleware.ErrorResponse(w, http.StatusNotFound, "Meeting not found")
		return
	}
	if err != nil {
		slog.Error("failed to query meeting", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	items, err := h.store.ListAgendaItems(id)
	if err != nil {
		slog.Error("failed to query agenda items", "error", err, "meeting_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeetingWithAgenda{
		Meeting: meeting,
		Items:   items,
	})
}
