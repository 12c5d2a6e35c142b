package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

func TestParseEventsJSON(t *testing.T) {
	t.Parallel()

	t.Run("single object with defaults", func(t *testing.T) {
		t.Parallel()

		events, err := ParseEventsJSON([]byte(`{"title":" Dance recital ","date":"2026-04-02"}`))
		require.NoError(t, err)
		require.Len(t, events, 1)

		e := events[0]
		assert.Equal(t, "Dance recital", e.Title)
		assert.Equal(t, models.NewDate(2026, time.April, 2), e.Date)
		assert.Equal(t, manualEventDescription, e.Description)
		assert.Equal(t, models.CategoryPersonal, e.Category)
		assert.Equal(t, models.PriorityMedium, e.Priority)
		assert.Zero(t, e.ID)
	})

	t.Run("array with explicit fields", func(t *testing.T) {
		t.Parallel()

		payload := `[
			{"title":"Holi","date":"2026-03-14T10:00:00+05:30","category":"cultural","priority":"low","description":"Colours"},
			{"title":"Chemistry exam","date":"2026-03-20","category":"academic","priority":"high"}
		]`
		events, err := ParseEventsJSON([]byte(payload))
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, models.NewDate(2026, time.March, 14), events[0].Date)
		assert.Equal(t, models.CategoryCultural, events[0].Category)
		assert.Equal(t, models.PriorityLow, events[0].Priority)
		assert.Equal(t, "Colours", events[0].Description)
		assert.Equal(t, models.CategoryAcademic, events[1].Category)
	})

	errorCases := map[string]string{
		"empty payload": `   `,
		"not json":      `title=Holi`,
		"missing date":  `{"title":"Holi"}`,
		"bad date":      `{"title":"Holi","date":"next friday"}`,
		"bad array":     `[{"title":"Holi","date":"2026-03-14"},`,
	}
	for name, payload := range errorCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseEventsJSON([]byte(payload))
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}
