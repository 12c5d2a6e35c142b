package models

type EventCategory string

const (
	CategoryAcademic EventCategory = "academic"
	CategoryPersonal EventCategory = "personal"
	CategorySocial   EventCategory = "social"
	CategoryCultural EventCategory = "cultural"
)

type EventPriority string

const (
	PriorityHigh   EventPriority = "high"
	PriorityMedium EventPriority = "medium"
	PriorityLow    EventPriority = "low"
)

type CalendarEvent struct {
	ID          int           `json:"id" db:"id" validate:"gt=0"`
	Title       string        `json:"title" db:"title" validate:"required"`
	Date        Date          `json:"date" db:"event_date" validate:"required"`
	Description string        `json:"description" db:"description"`
	Category    EventCategory `json:"category" db:"category" validate:"required,oneof=academic personal social cultural"`
	Priority    EventPriority `json:"priority" db:"priority" validate:"required,oneof=high medium low"`
}

// SameSlot reports whether two events collide under the title+date
// uniqueness rule.
func (e CalendarEvent) SameSlot(other CalendarEvent) bool {
	return e.Title == other.Title && e.Date.Equal(other.Date)
}

// UpcomingEvent is a calendar event annotated with its distance from today.
type UpcomingEvent struct {
	CalendarEvent
	DaysUntil int `json:"days_until"`
}
