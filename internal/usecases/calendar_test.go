package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

func TestUpcomingEvents(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.March, 10)
	events := []models.CalendarEvent{
		{ID: 1, Title: "Past", Date: today.AddDays(-1)},
		{ID: 2, Title: "Later", Date: today.AddDays(5)},
		{ID: 3, Title: "Today", Date: today},
		{ID: 4, Title: "Soon", Date: today.AddDays(2)},
		{ID: 5, Title: "Also soon", Date: today.AddDays(2)},
	}

	got := UpcomingEvents(events, today, 0)

	require.Len(t, got, 4)
	titles := make([]string, len(got))
	for i, e := range got {
		titles[i] = e.Title
	}
	assert.Equal(t, []string{"Today", "Soon", "Also soon", "Later"}, titles)
	assert.Equal(t, 0, got[0].DaysUntil)
	assert.Equal(t, 2, got[1].DaysUntil)
	assert.Equal(t, 5, got[3].DaysUntil)
}

func TestUpcomingEventsLimit(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.March, 10)
	var events []models.CalendarEvent
	for i := 12; i > 0; i-- {
		events = append(events, models.CalendarEvent{ID: i, Title: "Event", Date: today.AddDays(i)})
	}

	got := UpcomingEvents(events, today, 10)

	require.Len(t, got, 10)
	assert.Equal(t, 1, got[0].DaysUntil)
	assert.Equal(t, 10, got[9].DaysUntil)
}

func TestUpcomingEventsEmpty(t *testing.T) {
	t.Parallel()

	got := UpcomingEvents(nil, models.NewDate(2026, time.March, 10), 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
