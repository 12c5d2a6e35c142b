package usecases

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"student_diary/internal/models"
)

type EventExtractor struct {
	rules EventRules
}

func NewEventExtractor(rules EventRules) *EventExtractor {
	return &EventExtractor{rules: rules}
}

// Extract scans text for event keywords and returns one candidate per
// keyword found, provided the text also carries a recognised date
// expression. Candidates are numbered after the highest existing ID and are
// not yet merged into existing.
func (x *EventExtractor) Extract(text string, now time.Time, existing []models.CalendarEvent) []models.CalendarEvent {
	lower := strings.ToLower(text)
	candidates := []models.CalendarEvent{}

	date, ok := x.resolveDate(lower, models.DateOf(now))
	if !ok {
		return candidates
	}

	// A Caser holds state, so each call gets its own.
	titleCase := cases.Title(language.English)
	nextID := NextEventID(existing)
	for _, kw := range x.rules.Keywords {
		if !strings.Contains(lower, kw.Word) {
			continue
		}
		candidates = append(candidates, models.CalendarEvent{
			ID:          nextID,
			Title:       titleCase.String(kw.Word),
			Date:        date,
			Description: fmt.Sprintf(`Detected from diary entry: "%s..."`, truncate(text, x.rules.ExcerptLength)),
			Category:    kw.Category,
			Priority:    kw.Priority,
		})
		nextID++
	}

	return candidates
}

// resolveDate applies the first date pattern present anywhere in the text.
func (x *EventExtractor) resolveDate(lower string, today models.Date) (models.Date, bool) {
	for _, p := range x.rules.DatePatterns {
		if p.Expr.MatchString(lower) {
			return today.AddDays(p.OffsetDays), true
		}
	}
	return models.Date{}, false
}

// NextEventID returns one more than the highest ID in events.
func NextEventID(events []models.CalendarEvent) int {
	maxID := 0
	for _, e := range events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// MergeEvents appends candidates that do not collide on title+date with an
// existing event or an earlier candidate. Colliding candidates are dropped
// silently. Added events are renumbered so IDs stay unique and increasing.
func MergeEvents(existing, candidates []models.CalendarEvent) (merged, added []models.CalendarEvent) {
	merged = append([]models.CalendarEvent{}, existing...)
	added = []models.CalendarEvent{}
	nextID := NextEventID(existing)

	for _, c := range candidates {
		if containsSlot(merged, c) {
			continue
		}
		c.ID = nextID
		nextID++
		merged = append(merged, c)
		added = append(added, c)
	}

	return merged, added
}

func containsSlot(events []models.CalendarEvent, e models.CalendarEvent) bool {
	for _, existing := range events {
		if existing.SameSlot(e) {
			return true
		}
	}
	return false
}
