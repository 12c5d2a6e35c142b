package usecases

import (
	"sort"

	"student_diary/internal/models"
)

// UpcomingEvents returns events on or after today, earliest first, with
// their distance in days. limit <= 0 returns all of them.
func UpcomingEvents(events []models.CalendarEvent, today models.Date, limit int) []models.UpcomingEvent {
	upcoming := []models.UpcomingEvent{}
	for _, e := range events {
		if e.Date.Before(today) {
			continue
		}
		upcoming = append(upcoming, models.UpcomingEvent{
			CalendarEvent: e,
			DaysUntil:     today.DaysUntil(e.Date),
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
