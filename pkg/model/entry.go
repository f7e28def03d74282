package model

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type EntryID string

// NewEntryID generates a new unique EntryID
func NewEntryID() EntryID {
	return EntryID(uuid.New().String())
}

type EntryKind string

const (
	KindDaily       EntryKind = "daily"
	KindStartOfWeek EntryKind = "start_of_week"
	KindEndOfWeek   EntryKind = "end_of_week"
)

// Validate checks if the entry kind is valid
func (k EntryKind) Validate() error {
	switch k {
	case KindDaily, KindStartOfWeek, KindEndOfWeek:
		return nil
	default:
		return goerr.Wrap(ErrInvalidKind, "unknown entry kind", goerr.V("kind", k))
	}
}

// Answer holds the free-text response to a single prompt. Empty text is a
// valid answer.
type Answer struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Entry is one journal record. Date is the day the entry is about, WrittenAt
// is when it was recorded. The same (Date, Kind) may be recorded multiple
// times; revisions are resolved at read time, never rewritten in the store.
type Entry struct {
	ID        EntryID
	Date      civil.Date
	Kind      EntryKind
	Answers   []Answer
	WrittenAt time.Time
}

// Validate checks that the entry carries exactly the answer slots of its
// kind's prompt set, in prompt order. Answer text may be empty.
func (e *Entry) Validate() error {
	if err := e.Kind.Validate(); err != nil {
		return err
	}
	if !e.Date.IsValid() {
		return goerr.New("invalid entry date", goerr.V("date", e.Date))
	}

	ps, err := PromptSetFor(e.Kind)
	if err != nil {
		return err
	}
	if len(e.Answers) != len(ps.Prompts) {
		return goerr.New("answer count does not match prompt set",
			goerr.V("kind", e.Kind), goerr.V("want", len(ps.Prompts)), goerr.V("got", len(e.Answers)))
	}
	for i, p := range ps.Prompts {
		if e.Answers[i].Label != p.Label {
			return goerr.New("answer label does not match prompt set",
				goerr.V("index", i), goerr.V("want", p.Label), goerr.V("got", e.Answers[i].Label))
		}
	}

	return nil
}

// kindRank orders kinds within one date: week planning first, then dailies,
// then the week review.
func kindRank(k EntryKind) int {
	switch k {
	case KindStartOfWeek:
		return 0
	case KindDaily:
		return 1
	case KindEndOfWeek:
		return 2
	default:
		return 3
	}
}

// Collapse resolves duplicate (Date, Kind) revisions: the entry with the
// most recent WrittenAt wins, ties going to the later input position. Input
// follows store scan order (date asc, written_at asc), so the last revision
// seen is the winner. The result is ordered by date, then start_of_week,
// daily, end_of_week within one date.
func Collapse(entries []*Entry) []*Entry {
	type key struct {
		date civil.Date
		kind EntryKind
	}

	latest := make(map[key]*Entry, len(entries))
	for _, e := range entries {
		k := key{date: e.Date, kind: e.Kind}
		if cur, ok := latest[k]; ok && cur.WrittenAt.After(e.WrittenAt) {
			continue
		}
		latest[k] = e
	}

	collapsed := make([]*Entry, 0, len(latest))
	for _, e := range latest {
		collapsed = append(collapsed, e)
	}
	sort.Slice(collapsed, func(i, j int) bool {
		if collapsed[i].Date != collapsed[j].Date {
			return collapsed[i].Date.Before(collapsed[j].Date)
		}
		return kindRank(collapsed[i].Kind) < kindRank(collapsed[j].Kind)
	})

	return collapsed
}
