// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Internal data structures mirroring the database:

  - Member: council member identity, seat, bio, committees
  - Meeting: a dated council meeting with optional document links
  - AgendaItem: one matter considered at a meeting, with category and tags
  - Vote: one member's recorded disposition on one agenda item
  - VoteRecord: Vote joined with AgendaItem, Meeting, and Member fields

The relationship chain:

	Meeting 1──* AgendaItem 1──* Vote *──1 Member

# Result Types

Shapes computed by the stats package:

  - Stats: outcome tallies plus rounded percentages
  - CategoryStats: one category label with its Stats
  - CaseStudy: per-agenda-item summary with majority outcome and impact level
  - MemberVote: one member's disposition within a case study

# Constants

Outcome values (closed set, mutually exclusive):

	OutcomeYea     = "YEA"
	OutcomeNay     = "NAY"
	OutcomeAbstain = "ABSTAIN"
	OutcomeAbsent  = "ABSENT"

Case study outcomes:

	CaseOutcomeApproved = "Approved"
	CaseOutcomeDenied   = "Denied"

Impact levels:

	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"

Records whose agenda item failed to join degrade to UnknownCategory and
UnknownAgendaTitle rather than failing aggregation.
*/
package models
