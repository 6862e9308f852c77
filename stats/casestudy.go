// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"sort"
	"time"

	"github.com/danielhkuo/council-watch/models"
)

// Participation thresholds for impact classification. Policy constants,
// tuned independently of total council size.
const (
	HighImpactMinVotes   = 7
	MediumImpactMinVotes = 5
)

// BuildCaseStudies groups records by agenda item and summarizes each group:
// a strict-majority Approved/Denied outcome, a participation-based impact
// level, and the per-member dispositions in input order.
//
// Grouping keys on the agenda item ID, falling back to the title only for
// records that carry no ID (legacy rows). Title-only grouping can merge
// unrelated items that share a title; rows with IDs are never merged that way.
//
// Output is ordered by each group's most recent vote timestamp, descending,
// with ties resolved by first appearance in the input. A positive limit caps
// the number of case studies returned; zero or negative means no cap.
func BuildCaseStudies(records []models.VoteRecord, limit int) []models.CaseStudy {
	index := make(map[string]int)
	var groups [][]models.VoteRecord

	for _, rec := range records {
		// Prefixes keep ID keys and title keys in separate namespaces.
		key := "id:" + rec.AgendaItemID
		if rec.AgendaItemID == "" {
			key = "title:" + titleOf(rec)
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], rec)
	}

	type entry struct {
		study  models.CaseStudy
		latest time.Time
	}
	entries := make([]entry, len(groups))
	for i, grp := range groups {
		entries[i] = entry{
			study:  summarizeGroup(grp),
			latest: latestVoteTime(grp),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].latest.After(entries[j].latest)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	studies := make([]models.CaseStudy, len(entries))
	for i, e := range entries {
		studies[i] = e.study
	}
	return studies
}

// summarizeGroup derives the case study for one agenda item's votes.
// The group is never empty: groups only exist because a record created them.
func summarizeGroup(grp []models.VoteRecord) models.CaseStudy {
	first := grp[0]

	yea := 0
	perMember := make([]models.MemberVote, len(grp))
	for i, rec := range grp {
		if rec.Outcome == models.OutcomeYea {
			yea++
		}
		perMember[i] = models.MemberVote{
			MemberName: rec.MemberName,
			Outcome:    rec.Outcome,
		}
	}

	// Strict majority: exactly half YEA is a Denied tie.
	outcome := models.CaseOutcomeDenied
	if yea*2 > len(grp) {
		outcome = models.CaseOutcomeApproved
	}

	tags := first.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.CaseStudy{
		AgendaItemID: first.AgendaItemID,
		AgendaTitle:  titleOf(first),
		Category:     categoryOf(first),
		Date:         first.MeetingDate,
		Outcome:      outcome,
		ImpactLevel:  impactLevel(len(grp)),
		PerMember:    perMember,
		Tags:         tags,
	}
}

// impactLevel classifies participation count against the policy thresholds
func impactLevel(votes int) string {
	switch {
	case votes >= HighImpactMinVotes:
		return models.ImpactHigh
	case votes >= MediumImpactMinVotes:
		return models.ImpactMedium
	default:
		return models.ImpactLow
	}
}

func latestVoteTime(grp []models.VoteRecord) time.Time {
	latest := grp[0].CreatedAt
	for _, rec := range grp[1:] {
		if rec.CreatedAt.After(latest) {
			latest = rec.CreatedAt
		}
	}
	return latest
}
