// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats is the voting-statistics engine: pure, deterministic functions
over in-memory lists of enriched vote records. It performs no I/O and holds
no state; the store package supplies the records, the handlers render the
results.

# Filtering

ApplyFilters narrows a record list by up to four independent criteria
(search, category, member, outcome), ANDed together:

	filtered := stats.ApplyFilters(records, models.FilterCriteria{
		Search:  "housing",
		Outcome: models.OutcomeYea,
	})

Search is a case-insensitive substring match against the union of agenda
title, member name, category, and tags. Empty criteria are the identity.

# Aggregation

ComputeStats tallies outcomes and derives half-up rounded percentages;
an empty input produces an all-zero Stats rather than a division error.
ComputeMemberStats restricts to one member first. ComputeCategoryBreakdown
groups by category ("Unknown" when missing) in first-appearance order;
SortByTotal reorders a breakdown for dashboard display.

# Case Studies

BuildCaseStudies groups records by agenda item, derives an Approved/Denied
outcome under a strict-majority rule (a tied group is Denied), classifies
impact by participation count (HighImpactMinVotes, MediumImpactMinVotes),
and orders groups by most recent vote activity.

# Determinism

Every function is a total, side-effect-free function of its inputs: integer
tallies, no wall clock, and no map-iteration order in any output. Repeated
calls over the same input produce identical results.
*/
package stats
