// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides ingest key generation and validation.

# Ingest Keys

Each ingestion pipeline (scraper) is identified by its source name and
carries a deterministic HMAC key derived from that name and a server-side
salt:

	key := auth.GenerateIngestKey("BRL Vote Tracker", cfg.IngestKeySalt)

The server validates the X-Ingest-Key header against the X-Ingest-Source
header without storing keys:

	if err := auth.ValidateIngestKey(source, key, cfg.IngestKeySalt); err != nil {
		// reject
	}

Comparison uses hmac.Equal to stay constant-time.

# IP Hashing

HashIP produces a salted, truncated one-way hash of a client IP, used only
for ingest audit logging.
*/
package auth
