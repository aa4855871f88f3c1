package timeline_test

import (
	"testing"
	"time"

	"github.com/pharod/boltnew-company-timeline/internal/timeline"

	"github.com/stretchr/testify/assert"
)

func TestBuild_NewestFirstWithMarker(t *testing.T) {
	events := []timeline.Event{
		hire("h1", "Alice Smith", day(2024, time.December, 20), "Developer", "Apollo", 90000),
		hire("h2", "Bob Jones", day(2025, time.January, 5), "QA Engineer", "Apollo", 80000),
		hire("h3", "Carol White", day(2025, time.February, 10), "Designer", "Hermes", 85000),
	}
	now := day(2025, time.February, 28)

	entries := timeline.Build(events, now)
	assert.Len(t, entries, 4)

	// The synthetic marker is the newest row and never leaks into the input.
	assert.Equal(t, timeline.KindCurrentDate, entries[0].Event.Kind)
	assert.Equal(t, now, entries[0].Event.Timestamp)
	assert.Len(t, events, 3)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Event.Timestamp.After(entries[i-1].Event.Timestamp))
	}
}

func TestBuild_BoundaryFlags(t *testing.T) {
	events := []timeline.Event{
		hire("h1", "Alice Smith", day(2024, time.December, 20), "Developer", "Apollo", 90000),
		hire("h2", "Bob Jones", day(2025, time.January, 5), "QA Engineer", "Apollo", 80000),
		hire("h3", "Carol White", day(2025, time.January, 25), "Designer", "Hermes", 85000),
	}
	entries := timeline.Build(events, day(2025, time.February, 28))

	// Marker opens both 2025 and February.
	assert.True(t, entries[0].NewYear)
	assert.True(t, entries[0].NewMonth)

	// First January row opens the month but not the year.
	assert.Equal(t, "h3", entries[1].Event.ID)
	assert.False(t, entries[1].NewYear)
	assert.True(t, entries[1].NewMonth)

	// Second January row opens nothing.
	assert.Equal(t, "h2", entries[2].Event.ID)
	assert.False(t, entries[2].NewYear)
	assert.False(t, entries[2].NewMonth)

	// Crossing back into 2024 opens both.
	assert.Equal(t, "h1", entries[3].Event.ID)
	assert.True(t, entries[3].NewYear)
	assert.True(t, entries[3].NewMonth)
}

func TestBuild_EmptyLogStillRendersMarker(t *testing.T) {
	entries := timeline.Build(nil, day(2025, time.February, 28))
	assert.Len(t, entries, 1)
	assert.Equal(t, timeline.KindCurrentDate, entries[0].Event.Kind)
	assert.True(t, entries[0].NewYear)
	assert.True(t, entries[0].NewMonth)
}
