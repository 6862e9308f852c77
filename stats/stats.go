// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/danielhkuo/council-watch/models"
)

// ComputeStats tallies each outcome across records and derives rounded
// percentages. A zero-length input yields an all-zero Stats, never an error.
func ComputeStats(records []models.VoteRecord) models.Stats {
	s := models.Stats{Total: len(records)}
	for _, rec := range records {
		switch rec.Outcome {
		case models.OutcomeYea:
			s.Yea++
		case models.OutcomeNay:
			s.Nay++
		case models.OutcomeAbstain:
			s.Abstain++
		case models.OutcomeAbsent:
			s.Absent++
		}
	}
	s.YeaPct = pct(s.Yea, s.Total)
	s.NayPct = pct(s.Nay, s.Total)
	s.AbstainPct = pct(s.Abstain, s.Total)
	return s
}

// ComputeMemberStats reduces records to one member's votes before tallying.
// The key matches the member ID, or the member name (case-insensitive) for
// rows ingested before member records carried stable IDs.
func ComputeMemberStats(records []models.VoteRecord, memberKey string) models.Stats {
	var own []models.VoteRecord
	for _, rec := range records {
		if rec.MemberID == memberKey || strings.EqualFold(rec.MemberName, memberKey) {
			own = append(own, rec)
		}
	}
	return ComputeStats(own)
}

// ComputeCategoryBreakdown groups records by agenda item category (missing
// category counts under "Unknown") and tallies each group independently.
// Groups appear in order of first appearance in the input.
func ComputeCategoryBreakdown(records []models.VoteRecord) []models.CategoryStats {
	index := make(map[string]int)
	var order []string
	var groups [][]models.VoteRecord

	for _, rec := range records {
		cat := categoryOf(rec)
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			order = append(order, cat)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], rec)
	}

	breakdown := make([]models.CategoryStats, len(groups))
	for i, grp := range groups {
		breakdown[i] = models.CategoryStats{
			Category: order[i],
			Stats:    ComputeStats(grp),
		}
	}
	return breakdown
}

// SortByTotal reorders a category breakdown descending by total vote count,
// breaking ties by category name ascending so output is stable across runs.
func SortByTotal(breakdown []models.CategoryStats) {
	sort.Slice(breakdown, func(i, j int) bool {
		a, b := breakdown[i], breakdown[j]
		if a.Stats.Total != b.Stats.Total {
			return a.Stats.Total > b.Stats.Total
		}
		return a.Category < b.Category
	})
}

// pct computes round(100*count/total) half-up, with 0 for an empty total
func pct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}
