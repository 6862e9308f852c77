package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/council-watch/cliparse"
	"github.com/danielhkuo/council-watch/db"
	"github.com/danielhkuo/council-watch/middleware"
	"github.com/danielhkuo/council-watch/router"
	"github.com/danielhkuo/council-watch/seed"
)

func main() {
	var err error

	// Load .env if present (development convenience, ignored in prod)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (PostgreSQL or SQLite per config)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load seed fixture if configured
	if cfg.SeedFile != "" {
		counts, err := seed.LoadFile(dbConn, cfg.SeedFile)
		if err != nil {
			slog.Error("seed load failed", "error", err, "file", cfg.SeedFile)
			os.Exit(1)
		}
		slog.Info("Seed fixture loaded",
			"file", cfg.SeedFile,
			"members", counts.Members,
			"meetings", counts.Meetings,
			"votes", counts.Votes,
		)
	}

	// Create router; CORS wraps the whole mux for the dashboard frontend
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
