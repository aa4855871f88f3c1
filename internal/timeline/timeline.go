package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Entry is one rendered row of the timeline: the event plus boundary flags
// set the first time its year or month is seen while scanning newest-first.
type Entry struct {
	Event    Event
	NewYear  bool
	NewMonth bool
}

// Build orders events newest-first, injects a synthetic CURRENT_DATE marker
// at now, and flags year/month boundaries. The marker exists only in the
// returned view, never in the log.
func Build(events []Event, now time.Time) []Entry {
	rows := make([]Event, 0, len(events)+1)
	rows = append(rows, events...)
	rows = append(rows, Event{
		ID:        uuid.NewString(),
		Timestamp: now,
		Kind:      KindCurrentDate,
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.After(rows[j].Timestamp)
	})

	entries := make([]Entry, 0, len(rows))
	var (
		haveYear  bool
		year      int
		haveMonth bool
		monthY    int
		month     time.Month
	)
	for _, ev := range rows {
		ts := ev.Timestamp.UTC()
		entry := Entry{Event: ev}

		if !haveYear || ts.Year() != year {
			haveYear = true
			year = ts.Year()
			entry.NewYear = true
		}
		if !haveMonth || ts.Year() != monthY || ts.Month() != month {
			haveMonth = true
			monthY = ts.Year()
			month = ts.Month()
			entry.NewMonth = true
		}

		entries = append(entries, entry)
	}
	return entries
}
