package usecases

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"student_diary/internal/models"
)

const icalProductID = "-//student_diary//diary events//EN"

// WriteICS encodes events as an iCalendar feed of all-day events. stamp is
// the DTSTAMP every event carries.
func WriteICS(w io.Writer, events []models.CalendarEvent, stamp time.Time) error {
	// The encoder refuses a calendar without components.
	if len(events) == 0 {
		return writeEmptyICS(w)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icalProductID)

	for _, e := range events {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, fmt.Sprintf("diary-event-%d@student_diary", e.ID))
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ev.Props.SetDate(ical.PropDateTimeStart, e.Date.Time())
		// DTEND of an all-day event is exclusive.
		ev.Props.SetDate(ical.PropDateTimeEnd, e.Date.AddDays(1).Time())
		ev.Props.SetText(ical.PropSummary, e.Title)
		if e.Description != "" {
			ev.Props.SetText(ical.PropDescription, e.Description)
		}
		ev.Props.SetText(ical.PropCategories, string(e.Category))
		// PRIORITY is an INTEGER property, so no VALUE=TEXT parameter.
		ev.Props.Set(&ical.Prop{Name: ical.PropPriority, Params: ical.Params{}, Value: icalPriority(e.Priority)})

		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func writeEmptyICS(w io.Writer) error {
	_, err := fmt.Fprintf(w, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:%s\r\nEND:VCALENDAR\r\n", icalProductID)
	if err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// icalPriority maps onto the RFC 5545 scale where 1 is highest.
func icalPriority(p models.EventPriority) string {
	switch p {
	case models.PriorityHigh:
		return "1"
	case models.PriorityLow:
		return "9"
	default:
		return "5"
	}
}
