// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/handlers"
	"github.com/danielhkuo/council-watch/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	membersHandler := handlers.NewMembersHandler(db, cfg)
	meetingsHandler := handlers.NewMeetingsHandler(db, cfg)
	votesHandler := handlers.NewVotesHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)
	ingestHandler := handlers.NewIngestHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Members (compare must register before the {id} wildcard)
	mux.HandleFunc("GET /members", middleware.WithLogging(membersHandler.List))
	mux.HandleFunc("GET /members/compare", middleware.WithLogging(membersHandler.Compare))
	mux.HandleFunc("GET /members/{id}", middleware.WithLogging(membersHandler.Get))

	// Meetings
	mux.HandleFunc("GET /meetings", middleware.WithLogging(meetingsHandler.List))
	mux.HandleFunc("GET /meetings/{id}", middleware.WithLogging(meetingsHandler.Get))

	// Vote feed with filters
	mux.HandleFunc("GET /votes", middleware.WithLogging(votesHandler.List))

	// Aggregate dashboards
	mux.HandleFunc("GET /stats/overview", middleware.WithLogging(dashboardHandler.Overview))
	mux.HandleFunc("GET /stats/categories", middleware.WithLogging(dashboardHandler.Categories))
	mux.HandleFunc("GET /case-studies", middleware.WithLogging(dashboardHandler.CaseStudies))

	// Ingestion (scrapers only, HMAC-keyed)
	mux.HandleFunc("POST /ingest/votes", middleware.WithLogging(ingestHandler.Votes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("council-watch API v1"))
	})

	return mux
}
