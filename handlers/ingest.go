// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/council-watch/auth"
	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/middleware"
	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/store"
)

type IngestHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewIngestHandler(db *sql.DB, cfg cliparse.Config) *IngestHandler {
	return &IngestHandler{store: store.New(db), cfg: cfg}
}

// outcomeAliases maps scraper vote values to the canonical outcome set
var outcomeAliases = map[string]string{
	"Y":       models.OutcomeYea,
	"YEA":     models.OutcomeYea,
	"YES":     models.OutcomeYea,
	"N":       models.OutcomeNay,
	"NAY":     models.OutcomeNay,
	"NO":      models.OutcomeNay,
	"ABSTAIN": models.OutcomeAbstain,
	"ABSENT":  models.OutcomeAbsent,
}

// Votes handles POST /ingest/votes
// Accepts a batch of scraped vote rows. Requires X-Ingest-Source and a
// matching X-Ingest-Key. Bad rows are skipped individually; the batch
// never fails as a whole because of one row.
func (h *IngestHandler) Votes(w http.ResponseWriter, r *http.Request) {
	source := r.Header.Get("X-Ingest-Source")
	key := r.Header.Get("X-Ingest-Key")
	if source == "" || key == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Ingest-Source and X-Ingest-Key required")
		return
	}
	if err := auth.ValidateIngestKey(source, key, h.cfg.IngestKeySalt); err != nil {
		slog.Warn("rejected ingest request",
			"source", source,
			"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IngestKeySalt),
		)
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid ingest key")
		return
	}

	var req models.IngestVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Votes) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "votes is required")
		return
	}

	inserted := 0
	var skipped []string
	for i, row := range req.Votes {
		if err := h.ingestRow(row, source); err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		inserted++
	}

	slog.Info("ingest batch processed",
		"source", source,
		"inserted", inserted,
		"skipped", len(skipped),
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.IngestKeySalt),
	)

	middleware.JSONResponse(w, http.StatusOK, models.IngestVotesResponse{
		Inserted: inserted,
		Skipped:  skipped,
	})
}

// ingestRow resolves one scraped row to a stored vote, creating the meeting
// and agenda item when they don't exist yet. Members are matched by exact
// name and never created here; an unmatched name skips the row.
func (h *IngestHandler) ingestRow(row models.IngestVote, source string) error {
	outcome, ok := outcomeAliases[strings.ToUpper(strings.TrimSpace(row.Outcome))]
	if !ok {
		return fmt.Errorf("unrecognized outcome %q", row.Outcome)
	}

	if strings.TrimSpace(row.MemberName) == "" {
		return fmt.Errorf("member name is required")
	}
	member, err := h.store.FindMemberByName(row.MemberName)
	if err == store.ErrNotFound {
		return fmt.Errorf("unknown member %q", row.MemberName)
	}
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", row.MeetingDate)
	if err != nil {
		return fmt.Errorf("meeting date must be YYYY-MM-DD, got %q", row.MeetingDate)
	}

	title := strings.TrimSpace(row.AgendaTitle)
	if title == "" {
		return fmt.Errorf("agenda title is required")
	}

	meeting, err := h.store.FindMeetingByDate(date)
	if err == store.ErrNotFound {
		meeting = models.Meeting{
			ID:    uuid.NewString(),
			Date:  date,
			Title: fmt.Sprintf("Council Meeting - %s", row.MeetingDate),
		}
		if err := h.store.InsertMeeting(meeting); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	item, err := h.store.FindAgendaItem(meeting.ID, title)
	if err == store.ErrNotFound {
		tags := row.Tags
		if len(tags) == 0 && row.Category != "" {
			tags = []string{row.Category}
		}
		item = models.AgendaItem{
			ID:        uuid.NewString(),
			MeetingID: meeting.ID,
			Title:     title,
			Category:  row.Category,
			Tags:      tags,
		}
		if err := h.store.InsertAgendaItem(item); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	sourceName := row.SourceName
	if sourceName == "" {
		sourceName = source
	}

	return h.store.InsertVote(models.Vote{
		ID:           uuid.NewString(),
		AgendaItemID: item.ID,
		MemberID:     member.ID,
		Outcome:      outcome,
		SourceName:   sourceName,
		CreatedAt:    time.Now().UTC(),
	})
}
