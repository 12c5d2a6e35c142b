package usecases

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

var extractNow = time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC)

func TestExtractEvents(t *testing.T) {
	t.Parallel()

	extractor := NewEventExtractor(DefaultEventRules())
	today := models.DateOf(extractNow)

	type wantEvent struct {
		title    string
		date     models.Date
		category models.EventCategory
		priority models.EventPriority
	}

	tests := []struct {
		name string
		text string
		want []wantEvent
	}{
		{
			name: "test tomorrow",
			text: "I have a math test tomorrow",
			want: []wantEvent{{"Test", today.AddDays(1), models.CategoryAcademic, models.PriorityHigh}},
		},
		{
			name: "project next week",
			text: "Science project due next week",
			want: []wantEvent{{"Project", today.AddDays(7), models.CategoryAcademic, models.PriorityMedium}},
		},
		{
			name: "month and day falls back to a week out",
			text: "Birthday party on March 5",
			want: []wantEvent{
				{"Birthday", today.AddDays(7), models.CategoryPersonal, models.PriorityMedium},
				{"Party", today.AddDays(7), models.CategoryPersonal, models.PriorityMedium},
			},
		},
		{
			name: "in n days falls back to a week out",
			text: "Dentist appointment in 3 days",
			want: []wantEvent{{"Appointment", today.AddDays(7), models.CategoryPersonal, models.PriorityMedium}},
		},
		{
			name: "first pattern in list order wins",
			text: "Exam next week, and a meeting tomorrow",
			want: []wantEvent{
				{"Exam", today.AddDays(1), models.CategoryAcademic, models.PriorityHigh},
				{"Meeting", today.AddDays(1), models.CategoryPersonal, models.PriorityMedium},
			},
		},
		{
			name: "keyword without date",
			text: "I have an exam",
		},
		{
			name: "date without keyword",
			text: "See you tomorrow",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := extractor.Extract(tc.text, extractNow, nil)
			require.Len(t, got, len(tc.want))

			for i, w := range tc.want {
				assert.Equal(t, w.title, got[i].Title)
				assert.Equal(t, w.date, got[i].Date)
				assert.Equal(t, w.category, got[i].Category)
				assert.Equal(t, w.priority, got[i].Priority)
				assert.Equal(t, i+1, got[i].ID)
			}
		})
	}
}

func TestExtractEventsDescription(t *testing.T) {
	t.Parallel()

	extractor := NewEventExtractor(DefaultEventRules())

	short := "Quiz tomorrow"
	got := extractor.Extract(short, extractNow, nil)
	require.Len(t, got, 1)
	assert.Equal(t, `Detected from diary entry: "Quiz tomorrow..."`, got[0].Description)

	long := "Quiz tomorrow " + strings.Repeat("a", 150)
	got = extractor.Extract(long, extractNow, nil)
	require.Len(t, got, 1)
	assert.Equal(t, `Detected from diary entry: "`+long[:100]+`..."`, got[0].Description)
}

func TestExtractEventsAcrossMonthEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	got := NewEventExtractor(DefaultEventRules()).Extract("exam tomorrow", now, nil)

	require.Len(t, got, 1)
	assert.Equal(t, models.NewDate(2026, time.February, 1), got[0].Date)
}

func TestExtractEventsContinuesIDs(t *testing.T) {
	t.Parallel()

	existing := []models.CalendarEvent{{ID: 1}, {ID: 5}}
	got := NewEventExtractor(DefaultEventRules()).Extract("Birthday party tomorrow", extractNow, existing)

	require.Len(t, got, 2)
	assert.Equal(t, 6, got[0].ID)
	assert.Equal(t, 7, got[1].ID)
}

func TestMergeEvents(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.March, 11)
	existing := []models.CalendarEvent{
		{ID: 3, Title: "Test", Date: day, Category: models.CategoryAcademic, Priority: models.PriorityHigh},
	}
	candidates := []models.CalendarEvent{
		{ID: 4, Title: "Test", Date: day},
		{ID: 5, Title: "Party", Date: day},
		{ID: 6, Title: "Party", Date: day},
		{ID: 7, Title: "Test", Date: day.AddDays(1)},
	}

	merged, added := MergeEvents(existing, candidates)

	require.Len(t, added, 2)
	assert.Equal(t, "Party", added[0].Title)
	assert.Equal(t, 4, added[0].ID)
	assert.Equal(t, "Test", added[1].Title)
	assert.Equal(t, 5, added[1].ID)
	assert.Len(t, merged, 3)
	assert.Len(t, existing, 1, "existing slice must not grow")
}

func TestMergeEventsIsIdempotentForSameEntry(t *testing.T) {
	t.Parallel()

	extractor := NewEventExtractor(DefaultEventRules())
	text := "Math test and science project tomorrow"

	first, added := MergeEvents(nil, extractor.Extract(text, extractNow, nil))
	require.Len(t, added, 2)

	second, added := MergeEvents(first, extractor.Extract(text, extractNow, first))
	assert.Empty(t, added)
	assert.Equal(t, first, second)
}

func TestNextEventID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, NextEventID(nil))
	assert.Equal(t, 10, NextEventID([]models.CalendarEvent{{ID: 9}, {ID: 2}}))
}

func TestExtractEventsConcurrently(t *testing.T) {
	t.Parallel()

	extractor := NewEventExtractor(DefaultEventRules())
	want := []string{"Exam", "Birthday", "Party"}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := extractor.Extract("Birthday party and exam tomorrow", extractNow, nil)
				titles := make([]string, len(got))
				for j, e := range got {
					titles[j] = e.Title
				}
				assert.Equal(t, want, titles)
			}
		}()
	}
	wg.Wait()
}
