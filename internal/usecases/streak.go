package usecases

import "student_diary/internal/models"

// Streak counts consecutive days ending today that have at least one entry.
// A day without an entry today means a streak of zero.
func Streak(entries []models.JournalEntry, today models.Date) int {
	written := make(map[models.Date]struct{}, len(entries))
	for _, e := range entries {
		written[e.Date] = struct{}{}
	}

	streak := 0
	for day := today; ; day = day.AddDays(-1) {
		if _, ok := written[day]; !ok {
			return streak
		}
		streak++
	}
}
