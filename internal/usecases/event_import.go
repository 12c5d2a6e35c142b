package usecases

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"student_diary/internal/models"
)

const manualEventDescription = "Manually added event"

type eventPayload struct {
	Title       string  `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
}

// ParseEventsJSON decodes a single event object or an array of them.
// Missing category defaults to personal, missing priority to medium. IDs are
// left at zero for the merge step to assign.
func ParseEventsJSON(data []byte) ([]models.CalendarEvent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidEvent)
	}

	var payloads []eventPayload
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON array: %v", ErrInvalidEvent, err)
		}
	} else {
		var single eventPayload
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON object: %v", ErrInvalidEvent, err)
		}
		payloads = []eventPayload{single}
	}

	events := make([]models.CalendarEvent, 0, len(payloads))
	for _, p := range payloads {
		event, err := p.toEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (p eventPayload) toEvent() (models.CalendarEvent, error) {
	event := models.CalendarEvent{
		Title:       strings.TrimSpace(p.Title),
		Description: manualEventDescription,
		Category:    models.CategoryPersonal,
		Priority:    models.PriorityMedium,
	}

	if p.Date == nil || *p.Date == "" {
		return event, fmt.Errorf("%w: date is required for %q", ErrInvalidEvent, p.Title)
	}
	date, err := parseEventDate(*p.Date)
	if err != nil {
		return event, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	event.Date = date

	if p.Description != nil && *p.Description != "" {
		event.Description = *p.Description
	}
	if p.Category != nil && *p.Category != "" {
		event.Category = models.EventCategory(*p.Category)
	}
	if p.Priority != nil && *p.Priority != "" {
		event.Priority = models.EventPriority(*p.Priority)
	}

	return event, nil
}

// parseEventDate accepts a bare date or a full RFC 3339 timestamp.
func parseEventDate(s string) (models.Date, error) {
	if d, err := models.ParseDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid date format: %s", s)
	}
	return models.DateOf(t), nil
}
