package usecases

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student_diary/internal/models"
)

func TestWriteICS(t *testing.T) {
	t.Parallel()

	events := []models.CalendarEvent{
		{ID: 1, Title: "Exam", Date: models.NewDate(2026, time.March, 11), Description: "Chemistry", Category: models.CategoryAcademic, Priority: models.PriorityHigh},
		{ID: 2, Title: "Holi", Date: models.NewDate(2026, time.March, 14), Category: models.CategoryCultural, Priority: models.PriorityLow},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, events, diaryNow))

	out := buf.String()
	assert.Contains(t, out, "SUMMARY:Exam")
	assert.Contains(t, out, "VALUE=DATE:20260311")
	assert.Contains(t, out, "VALUE=DATE:20260312")
	assert.Contains(t, out, "PRIORITY:1")
	assert.Contains(t, out, "PRIORITY:9")
	assert.NotContains(t, out, "PRIORITY;")

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2)

	summary, err := cal.Events()[1].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Holi", summary)

	priority := cal.Events()[0].Props.Get(ical.PropPriority)
	require.NotNil(t, priority)
	assert.Equal(t, "1", priority.Value)
	assert.Empty(t, priority.Params.Get(ical.ParamValue))
}

func TestWriteICSEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteICS(&buf, nil, diaryNow))

	assert.Equal(t,
		"BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:"+icalProductID+"\r\nEND:VCALENDAR\r\n",
		buf.String())
}
