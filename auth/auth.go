// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidIngestKey = errors.New("invalid ingest key")

// GenerateIngestKey creates an HMAC-based key for a named ingestion source
// (e.g. "BRL Vote Tracker"). Deterministic and verifiable, so keys can be
// handed to scrapers without storing them.
func GenerateIngestKey(sourceName, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sourceName))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateIngestKey checks that the provided key is valid for the source
func ValidateIngestKey(sourceName, key, salt string) error {
	expected := GenerateIngestKey(sourceName, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidIngestKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
