// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the read/query layer between the database and the stats
engine.

# Reads

All dashboard data flows through a small set of queries:

	st := store.New(conn)
	members, err := st.ListMembers(true)          // active only, by name
	meetings, err := st.ListMeetings(time.Time{}) // all, date descending
	records, err := st.ListVoteRecords(store.VoteQuery{MemberID: id})

ListVoteRecords returns enriched vote records - each vote joined with its
agenda item, that item's meeting, and the voting member - ordered most
recent first. The joins are LEFT JOINs: a vote whose relationships fail to
resolve still appears, with missing fields zeroed, so one bad row never
hides the rest. The stats package turns those zero values into its
documented "Unknown" defaults.

# Writes

Insert operations exist for the ingestion endpoint and the seed loader;
the public API never mutates data. FindMemberByName, FindMeetingByDate,
and FindAgendaItem support ingestion's dedupe-by-natural-key flow.

# Portability

Queries use $N placeholders and portable SQL accepted by both lib/pq and
modernc sqlite. List-valued columns (committees, tags) are stored as
JSON-encoded TEXT.
*/
package store
