// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps a handler with slog request/completion logging:

	mux.HandleFunc("GET /votes", middleware.WithLogging(handler.ListVotes))

# JSON Helpers

JSONResponse and ErrorResponse standardize response encoding:

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")

ParseJSONBody decodes a request body into a struct.

# CORS

CORS wraps the whole mux to allow the dashboard frontend (a separate
origin during development) to call the API, including the ingest headers.

# Client IP

GetClientIP resolves the caller's address through X-Forwarded-For and
X-Real-IP; the ingest handler hashes it for audit logs.
*/
package middleware
