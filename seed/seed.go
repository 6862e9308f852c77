// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/council-watch/models"
	"github.com/danielhkuo/council-watch/store"
)

// Fixture is the YAML shape of a seed file
type Fixture struct {
	Members  []FixtureMember  `yaml:"members"`
	Meetings []FixtureMeeting `yaml:"meetings"`
}

type FixtureMember struct {
	Name       string   `yaml:"name"`
	Seat       string   `yaml:"seat"`
	Active     bool     `yaml:"active"`
	Bio        string   `yaml:"bio"`
	Committees []string `yaml:"committees"`
}

type FixtureMeeting struct {
	Date  string        `yaml:"date"` // YYYY-MM-DD
	Title string        `yaml:"title"`
	Items []FixtureItem `yaml:"items"`
}

type FixtureItem struct {
	Title    string        `yaml:"title"`
	Category string        `yaml:"category"`
	Tags     []string      `yaml:"tags"`
	Votes    []FixtureVote `yaml:"votes"`
}

type FixtureVote struct {
	Member  string `yaml:"member"`
	Outcome string `yaml:"outcome"`
}

// Counts reports what a load inserted
type Counts struct {
	Members  int
	Meetings int
	Votes    int
}

// LoadFile reads a YAML fixture and loads it into the database.
// Loading is idempotent against natural keys (member name, meeting date,
// agenda title within a meeting): re-running on the same database inserts
// nothing new, so startup seeding survives restarts.
func LoadFile(db *sql.DB, path string) (Counts, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return Counts{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return Load(db, fixture)
}

// Load inserts a fixture's members, meetings, agenda items, and votes.
func Load(db *sql.DB, fixture Fixture) (Counts, error) {
	st := store.New(db)
	var counts Counts

	for _, fm := range fixture.Members {
		if fm.Name == "" {
			return counts, fmt.Errorf("seed member with empty name")
		}
		if _, err := st.FindMemberByName(fm.Name); err == nil {
			continue
		} else if err != store.ErrNotFound {
			return counts, err
		}
		err := st.InsertMember(models.Member{
			ID:         uuid.NewString(),
			Name:       fm.Name,
			Seat:       fm.Seat,
			Active:     fm.Active,
			Bio:        fm.Bio,
			Committees: fm.Committees,
		})
		if err != nil {
			return counts, err
		}
		counts.Members++
	}

	for _, meeting := range fixture.Meetings {
		if err := loadMeeting(st, meeting, &counts); err != nil {
			return counts, err
		}
	}

	return counts, nil
}

func loadMeeting(st *store.Store, fm FixtureMeeting, counts *Counts) error {
	date, err := time.Parse("2006-01-02", fm.Date)
	if err != nil {
		return fmt.Errorf("seed meeting date must be YYYY-MM-DD, got %q", fm.Date)
	}

	meeting, err := st.FindMeetingByDate(date)
	if err == store.ErrNotFound {
		meeting = models.Meeting{
			ID:    uuid.NewString(),
			Date:  date,
			Title: fm.Title,
		}
		if err := st.InsertMeeting(meeting); err != nil {
			return err
		}
		counts.Meetings++
	} else if err != nil {
		return err
	}

	// Votes get timestamps offset from the meeting date so recency
	// ordering in the dashboard is deterministic across loads.
	voteAt := date.Add(19 * time.Hour)

	for _, fi := range fm.Items {
		if fi.Title == "" {
			return fmt.Errorf("seed agenda item with empty title in meeting %s", fm.Date)
		}

		item, err := st.FindAgendaItem(meeting.ID, fi.Title)
		if err == store.ErrNotFound {
			item = models.AgendaItem{
				ID:        uuid.NewString(),
				MeetingID: meeting.ID,
				Title:     fi.Title,
				Category:  fi.Category,
				Tags:      fi.Tags,
			}
			if err := st.InsertAgendaItem(item); err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			// Item already seeded; its votes came with it.
			continue
		}

		for _, fv := range fi.Votes {
			if !models.ValidOutcome(fv.Outcome) {
				return fmt.Errorf("seed vote outcome %q for %q is not one of YEA/NAY/ABSTAIN/ABSENT", fv.Outcome, fv.Member)
			}
			member, err := st.FindMemberByName(fv.Member)
			if err == store.ErrNotFound {
				return fmt.Errorf("seed vote references unknown member %q", fv.Member)
			}
			if err != nil {
				return err
			}

			voteAt = voteAt.Add(time.Second)
			err = st.InsertVote(models.Vote{
				ID:           uuid.NewString(),
				AgendaItemID: item.ID,
				MemberID:     member.ID,
				Outcome:      fv.Outcome,
				SourceName:   "seed",
				CreatedAt:    voteAt,
			})
			if err != nil {
				return err
			}
			counts.Votes++
		}
	}

	return nil
}
