// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/council-watch/models"
)

var ErrNotFound = errors.New("record not found")

// Store wraps the SQL database with read and insert operations over members,
// meetings, agenda items, and votes. All queries use $N placeholders, which
// both lib/pq and modernc sqlite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// VoteQuery narrows ListVoteRecords. Zero values mean no constraint.
type VoteQuery struct {
	MemberID     string
	AgendaItemID string
	MeetingID    string
	Limit        int
}

// ListMembers returns members ordered by name, optionally only active ones.
func (s *Store) ListMembers(activeOnly bool) ([]models.Member, error) {
	query := `
		SELECT id, name, seat, active, bio, photo_url, committees
		FROM member
	`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetMember returns one member by ID, or ErrNotFound.
func (s *Store) GetMember(id string) (models.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, name, seat, active, bio, photo_url, committees
		FROM member
		WHERE id = $1
	`, id)

	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return models.Member{}, ErrNotFound
	}
	return m, err
}

// FindMemberByName returns the first member whose name matches exactly,
// or ErrNotFound. Name collisions are a data-quality concern; the lowest
// ID wins so lookups stay deterministic.
func (s *Store) FindMemberByName(name string) (models.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, name, seat, active, bio, photo_url, committees
		FROM member
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`, name)

	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return models.Member{}, ErrNotFound
	}
	return m, err
}

// ListMeetings returns meetings ordered by date descending. A non-zero date
// filters to that calendar date exactly.
func (s *Store) ListMeetings(date time.Time) ([]models.Meeting, error) {
	query := `
		SELECT id, date, title, agenda_url, minutes_url, video_url
		FROM meeting
	`
	args := []interface{}{}
	if !date.IsZero() {
		query += ` WHERE date = $1`
		args = append(args, date)
	}
	query += ` ORDER BY date DESC, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meetings: %w", err)
	}
	defer rows.Close()

	meetings := []models.Meeting{}
	for rows.Next() {
		var m models.Meeting
		var agendaURL, minutesURL, videoURL sql.NullString
		if err := rows.Scan(&m.ID, &m.Date, &m.Title, &agendaURL, &minutesURL, &videoURL); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		m.AgendaURL = nullableString(agendaURL)
		m.MinutesURL = nullableString(minutesURL)
		m.VideoURL = nullableString(videoURL)
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// GetMeeting returns one meeting by ID, or ErrNotFound.
func (s *Store) GetMeeting(id string) (models.Meeting, error) {
	var m models.Meeting
	var agendaURL, minutesURL, videoURL sql.NullString
	err := s.db.QueryRow(`
		SELECT id, date, title, agenda_url, minutes_url, video_url
		FROM meeting
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Date, &m.Title, &agendaURL, &minutesURL, &videoURL)

	if err == sql.ErrNoRows {
		return models.Meeting{}, ErrNotFound
	}
	if err != nil {
		return models.Meeting{}, fmt.Errorf("failed to query meeting: %w", err)
	}
	m.AgendaURL = nullableString(agendaURL)
	m.MinutesURL = nullableString(minutesURL)
	m.VideoURL = nullableString(videoURL)
	return m, nil
}

// FindMeetingByDate returns the meeting on the given calendar date, or
// ErrNotFound. Used by ingestion to attach votes to an existing meeting.
func (s *Store) FindMeetingByDate(date time.Time) (models.Meeting, error) {
	var m models.Meeting
	var agendaURL, minutesURL, videoURL sql.NullString
	err := s.db.QueryRow(`
		SELECT id, date, title, agenda_url, minutes_url, video_url
		FROM meeting
		WHERE date = $1
		ORDER BY id
		LIMIT 1
	`, date).Scan(&m.ID, &m.Date, &m.Title, &agendaURL, &minutesURL, &videoURL)

	if err == sql.ErrNoRows {
		return models.Meeting{}, ErrNotFound
	}
	if err != nil {
		return models.Meeting{}, fmt.Errorf("failed to query meeting: %w", err)
	}
	m.AgendaURL = nullableString(agendaURL)
	m.MinutesURL = nullableString(minutesURL)
	m.VideoURL = nullableString(videoURL)
	return m, nil
}

// ListAgendaItems returns a meeting's agenda items ordered by title.
func (s *Store) ListAgendaItems(meetingID string) ([]models.AgendaItem, error) {
	rows, err := s.db.Query(`
		SELECT id, meeting_id, title, category, tags
		FROM agenda_item
		WHERE meeting_id = $1
		ORDER BY title, id
	`, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query agenda items: %w", err)
	}
	defer rows.Close()

	items := []models.AgendaItem{}
	for rows.Next() {
		var item models.AgendaItem
		var tags string
		if err := rows.Scan(&item.ID, &item.MeetingID, &item.Title, &item.Category, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan agenda item: %w", err)
		}
		item.Tags = decodeStringList(tags)
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindAgendaItem returns the agenda item with the given title within one
// meeting, or ErrNotFound. Used by ingestion to dedupe by (meeting, title).
func (s *Store) FindAgendaItem(meetingID, title string) (models.AgendaItem, error) {
	var item models.AgendaItem
	var tags string
	err := s.db.QueryRow(`
		SELECT id, meeting_id, title, category, tags
		FROM agenda_item
		WHERE meeting_id = $1 AND title = $2
		ORDER BY id
		LIMIT 1
	`, meetingID, title).Scan(&item.ID, &item.MeetingID, &item.Title, &item.Category, &tags)

	if err == sql.ErrNoRows {
		return models.AgendaItem{}, ErrNotFound
	}
	if err != nil {
		return models.AgendaItem{}, fmt.Errorf("failed to query agenda item: %w", err)
	}
	item.Tags = decodeStringList(tags)
	return item, nil
}

// ListVoteRecords returns votes joined with their agenda item, that item's
// meeting, and the voting member, ordered by vote creation time descending.
// LEFT JOINs keep votes with broken relationships in the result; missing
// fields degrade to zero values rather than aborting the scan.
func (s *Store) ListVoteRecords(q VoteQuery) ([]models.VoteRecord, error) {
	query := `
		SELECT v.id, v.outcome, v.source_name, v.created_at, v.member_id,
		       a.id, a.title, a.category, a.tags, a.meeting_id,
		       mt.date, m.name, m.seat
		FROM vote v
		LEFT JOIN agenda_item a ON v.agenda_item_id = a.id
		LEFT JOIN meeting mt ON a.meeting_id = mt.id
		LEFT JOIN member m ON v.member_id = m.id
	`
	where := ""
	args := []interface{}{}
	appendCond := func(cond, val string) {
		if val == "" {
			return
		}
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		args = append(args, val)
		where += fmt.Sprintf("%s = $%d", cond, len(args))
	}
	appendCond("v.member_id", q.MemberID)
	appendCond("v.agenda_item_id", q.AgendaItemID)
	appendCond("a.meeting_id", q.MeetingID)

	query += where + ` ORDER BY v.created_at DESC, v.id`
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote records: %w", err)
	}
	defer rows.Close()

	records := []models.VoteRecord{}
	for rows.Next() {
		var rec models.VoteRecord
		var itemID, itemTitle, category, tags, meetingID sql.NullString
		var memberName, memberSeat sql.NullString
		var meetingDate sql.NullTime
		err := rows.Scan(
			&rec.VoteID, &rec.Outcome, &rec.SourceName, &rec.CreatedAt, &rec.MemberID,
			&itemID, &itemTitle, &category, &tags, &meetingID,
			&meetingDate, &memberName, &memberSeat,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote record: %w", err)
		}
		rec.AgendaItemID = itemID.String
		rec.AgendaTitle = itemTitle.String
		rec.Category = category.String
		rec.Tags = decodeStringList(tags.String)
		rec.MeetingID = meetingID.String
		rec.MeetingDate = meetingDate.Time
		rec.MemberName = memberName.String
		rec.MemberSeat = memberSeat.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Insert operations (used by ingestion and seeding; the API itself is read-only)

func (s *Store) InsertMember(m models.Member) error {
	_, err := s.db.Exec(`
		INSERT INTO member (id, name, seat, active, bio, photo_url, committees)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, m.ID, m.Name, m.Seat, m.Active, m.Bio, m.PhotoURL, encodeStringList(m.Committees))
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (s *Store) InsertMeeting(m models.Meeting) error {
	_, err := s.db.Exec(`
		INSERT INTO meeting (id, date, title, agenda_url, minutes_url, video_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.Date, m.Title, m.AgendaURL, m.MinutesURL, m.VideoURL)
	if err != nil {
		return fmt.Errorf("failed to insert meeting: %w", err)
	}
	return nil
}

func (s *Store) InsertAgendaItem(item models.AgendaItem) error {
	_, err := s.db.Exec(`
		INSERT INTO agenda_item (id, meeting_id, title, category, tags)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.MeetingID, item.Title, item.Category, encodeStringList(item.Tags))
	if err != nil {
		return fmt.Errorf("failed to insert agenda item: %w", err)
	}
	return nil
}

func (s *Store) InsertVote(v models.Vote) error {
	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO vote (id, agenda_item_id, member_id, outcome, source_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.AgendaItemID, v.MemberID, v.Outcome, v.SourceName, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row scanner) (models.Member, error) {
	var m models.Member
	var photoURL sql.NullString
	var committees string
	err := row.Scan(&m.ID, &m.Name, &m.Seat, &m.Active, &m.Bio, &photoURL, &committees)
	if err != nil {
		return models.Member{}, err
	}
	m.PhotoURL = nullableString(photoURL)
	m.Committees = decodeStringList(committees)
	return m, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// encodeStringList stores a list as a JSON TEXT column (portable across
// both database engines)
func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeStringList tolerates malformed stored values, degrading to empty
func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}
