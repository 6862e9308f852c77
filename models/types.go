// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote outcome constants (closed set)
const (
	OutcomeYea     = "YEA"
	OutcomeNay     = "NAY"
	OutcomeAbstain = "ABSTAIN"
	OutcomeAbsent  = "ABSENT"
)

// Case study outcome labels
const (
	CaseOutcomeApproved = "Approved"
	CaseOutcomeDenied   = "Denied"
)

// Impact level labels
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Fallback labels for records whose agenda item failed to join
const (
	UnknownCategory    = "Unknown"
	UnknownAgendaTitle = "Unknown Agenda Item"
)

// ValidOutcome reports whether v is one of the four recognized outcomes.
func ValidOutcome(v string) bool {
	switch v {
	case OutcomeYea, OutcomeNay, OutcomeAbstain, OutcomeAbsent:
		return true
	}
	return false
}

// Domain types

type Member struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Seat       string   `json:"seat"`
	Active     bool     `json:"active"`
	Bio        string   `json:"bio,omitempty"`
	PhotoURL   *string  `json:"photo_url,omitempty"`
	Committees []string `json:"committees"`
}

type Meeting struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Title      string    `json:"title,omitempty"`
	AgendaURL  *string   `json:"agenda_url,omitempty"`
	MinutesURL *string   `json:"minutes_url,omitempty"`
	VideoURL   *string   `json:"video_url,omitempty"`
}

type AgendaItem struct {
	ID        string   `json:"id"`
	MeetingID string   `json:"meeting_id"`
	Title     string   `json:"title"`
	Category  string   `json:"category,omitempty"`
	Tags      []string `json:"tags"`
}

type Vote struct {
	ID           string    `json:"id"`
	AgendaItemID string    `json:"agenda_item_id"`
	MemberID     string    `json:"member_id"`
	Outcome      string    `json:"outcome"`
	SourceName   string    `json:"source_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// VoteRecord is a Vote joined with its AgendaItem, that item's Meeting,
// and the voting Member. It is the common input shape for the stats engine.
type VoteRecord struct {
	VoteID       string    `json:"vote_id"`
	Outcome      string    `json:"outcome"`
	SourceName   string    `json:"source_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	AgendaItemID string    `json:"agenda_item_id"`
	AgendaTitle  string    `json:"agenda_title"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	MeetingID    string    `json:"meeting_id"`
	MeetingDate  time.Time `json:"meeting_date"`
	MemberID     string    `json:"member_id"`
	MemberName   string    `json:"member_name"`
	MemberSeat   string    `json:"member_seat,omitempty"`
}

// FilterCriteria narrows a list of vote records. Empty fields are ignored;
// non-empty fields are ANDed together.
type FilterCriteria struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Member   string `json:"member"`
	Outcome  string `json:"outcome"`
}

// Stats is the count-based summary of a list of vote records.
// Percentages are rounded half-up and are 0 when Total is 0.
type Stats struct {
	Total      int `json:"total"`
	Yea        int `json:"yea"`
	Nay        int `json:"nay"`
	Abstain    int `json:"abstain"`
	Absent     int `json:"absent"`
	YeaPct     int `json:"yea_pct"`
	NayPct     int `json:"nay_pct"`
	AbstainPct int `json:"abstain_pct"`
}

// CategoryStats pairs one category label with its Stats. Breakdowns are
// returned as ordered slices rather than maps so output order is stable.
type CategoryStats struct {
	Category string `json:"category"`
	Stats    Stats  `json:"stats"`
}

// MemberVote records one member's disposition within a case study.
type MemberVote struct {
	MemberName string `json:"member_name"`
	Outcome    string `json:"outcome"`
}

// CaseStudy summarizes all votes cast on one agenda item.
type CaseStudy struct {
	AgendaItemID string       `json:"agenda_item_id,omitempty"`
	AgendaTitle  string       `json:"agenda_title"`
	Category     string       `json:"category"`
	Date         time.Time    `json:"date"`
	Outcome      string       `json:"outcome"`
	ImpactLevel  string       `json:"impact_level"`
	PerMember    []MemberVote `json:"per_member_votes"`
	Tags         []string     `json:"tags"`
}

// Request types

type IngestVote struct {
	MemberName  string   `json:"member_name"`
	AgendaTitle string   `json:"agenda_title"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	MeetingDate string   `json:"meeting_date"` // YYYY-MM-DD
	Outcome     string   `json:"outcome"`
	SourceName  string   `json:"source_name"`
}

type IngestVotesRequest struct {
	Votes []IngestVote `json:"votes"`
}

// Response types

type IngestVotesResponse struct {
	Inserted int      `json:"inserted"`
	Skipped  []string `json:"skipped,omitempty"`
}

type MemberProfileResponse struct {
	Member Member `json:"member"`
	Stats  Stats  `json:"stats"`
}

type MemberComparison struct {
	Member Member `json:"member"`
	Stats  Stats  `json:"stats"`
}

type CompareMembersResponse struct {
	Members []MemberComparison `json:"members"`
}

type MeetingWithAgenda struct {
	Meeting Meeting      `json:"meeting"`
	Items   []AgendaItem `json:"items"`
}

type VotesResponse struct {
	Records []VoteRecord `json:"records"`
	Stats   Stats        `json:"stats"`
}

type CaseStudiesResponse struct {
	CaseStudies []CaseStudy `json:"case_studies"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
