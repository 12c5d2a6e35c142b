package models

import "time"

func intPtr(v int) *int { return &v }

// SampleDocument is the demonstration data set used when no saved diary can
// be loaded and sample seeding is enabled.
func SampleDocument() *Document {
	return &Document{
		Entries: []JournalEntry{
			{
				ID:        1,
				Date:      NewDate(2025, time.January, 15),
				Content:   "Today was amazing! Finally understood quadratic equations in math class. Mr. Sharma explained it so well. Feeling really confident about the upcoming test.",
				Mood:      intPtr(8),
				Topics:    []TopicTag{TopicAcademic},
				WordCount: 35,
				CreatedAt: time.Date(2025, time.January, 15, 20, 0, 0, 0, time.UTC),
			},
			{
				ID:        2,
				Date:      NewDate(2025, time.January, 14),
				Content:   "Had a tough day. Physics test didn't go well, and I felt really stressed about it. Mom tried to cheer me up with my favorite food.",
				Mood:      intPtr(4),
				Topics:    []TopicTag{TopicAcademic, TopicFamily},
				WordCount: 42,
				CreatedAt: time.Date(2025, time.January, 14, 20, 0, 0, 0, time.UTC),
			},
			{
				ID:        3,
				Date:      NewDate(2025, time.January, 13),
				Content:   "Great time with friends at lunch! We planned a study group for the weekend. Priya and I are going to work on chemistry together.",
				Mood:      intPtr(7),
				Topics:    []TopicTag{TopicAcademic, TopicSocial},
				WordCount: 38,
				CreatedAt: time.Date(2025, time.January, 13, 20, 0, 0, 0, time.UTC),
			},
		},
		Events: []CalendarEvent{
			{ID: 1, Title: "Math Test", Date: NewDate(2025, time.January, 20), Description: "Quadratic equations and functions", Category: CategoryAcademic, Priority: PriorityHigh},
			{ID: 2, Title: "Priya's Birthday", Date: NewDate(2025, time.January, 25), Description: "Birthday celebration at Priya's house", Category: CategorySocial, Priority: PriorityMedium},
			{ID: 3, Title: "Science Project Due", Date: NewDate(2025, time.January, 30), Description: "Physics project on electromagnetic induction", Category: CategoryAcademic, Priority: PriorityHigh},
		},
		MoodHistory: []MoodSample{
			{Date: NewDate(2025, time.January, 10), Mood: 6, Note: "Regular day"},
			{Date: NewDate(2025, time.January, 11), Mood: 7, Note: "Good study session"},
			{Date: NewDate(2025, time.January, 12), Mood: 5, Note: "A bit tired"},
			{Date: NewDate(2025, time.January, 13), Mood: 7, Note: "Fun with friends"},
			{Date: NewDate(2025, time.January, 14), Mood: 4, Note: "Tough physics test"},
			{Date: NewDate(2025, time.January, 15), Mood: 8, Note: "Math breakthrough!"},
		},
		Insights: []string{},
	}
}
