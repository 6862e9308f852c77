// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"strings"

	"github.com/danielhkuo/council-watch/models"
)

// ApplyFilters returns the records matching every non-empty criteria field.
// Input order is preserved and the input slice is never modified. All-empty
// criteria return the records unchanged.
func ApplyFilters(records []models.VoteRecord, criteria models.FilterCriteria) []models.VoteRecord {
	filtered := make([]models.VoteRecord, 0, len(records))
	for _, rec := range records {
		if matches(rec, criteria) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// matches checks one record against all supplied criteria (logical AND)
func matches(rec models.VoteRecord, c models.FilterCriteria) bool {
	if c.Outcome != "" && rec.Outcome != c.Outcome {
		return false
	}
	if c.Category != "" && !strings.EqualFold(categoryOf(rec), c.Category) {
		return false
	}
	if c.Member != "" && !containsFold(rec.MemberName, c.Member) {
		return false
	}
	if c.Search != "" && !matchesSearch(rec, c.Search) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against the union of
// agenda title, member name, category, and tags (logical OR)
func matchesSearch(rec models.VoteRecord, search string) bool {
	if containsFold(titleOf(rec), search) {
		return true
	}
	if containsFold(rec.MemberName, search) {
		return true
	}
	if containsFold(categoryOf(rec), search) {
		return true
	}
	for _, tag := range rec.Tags {
		if containsFold(tag, search) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// categoryOf normalizes a missing category to the Unknown label
func categoryOf(rec models.VoteRecord) string {
	if rec.Category == "" {
		return models.UnknownCategory
	}
	return rec.Category
}

// titleOf normalizes a failed agenda item join to the fallback title
func titleOf(rec models.VoteRecord) string {
	if rec.AgendaTitle == "" {
		return models.UnknownAgendaTitle
	}
	return rec.AgendaTitle
}
