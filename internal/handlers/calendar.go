package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"student_diary/internal/models"
	"student_diary/internal/usecases"
)

const maxEventPayload = 1 << 20

type CalendarHandler struct {
	session *Session
}

func NewCalendarHandler(s *Session) *CalendarHandler {
	return &CalendarHandler{session: s}
}

func (ch *CalendarHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleGetEvents"

	limit := limitParam(r, 0)

	var events []models.UpcomingEvent
	ch.session.with(func(d *usecases.Diary) {
		events = d.UpcomingEvents(limit)
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   events,
	}, op)
}

// HandleCreateEvents accepts one event object or an array of them.
func (ch *CalendarHandler) HandleCreateEvents(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleCreateEvents"

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventPayload))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Couldnt read request body.", op)
		return
	}

	var added []models.CalendarEvent
	ch.session.with(func(d *usecases.Diary) {
		added, err = d.ImportEvents(r.Context(), body)
	})

	switch {
	case errors.Is(err, usecases.ErrInvalidEvent):
		writeError(w, http.StatusBadRequest, err.Error(), op)
		return
	case errors.Is(err, usecases.ErrPersist):
		writeJSON(w, http.StatusCreated, map[string]any{
			"status":  "created",
			"data":    added,
			"warning": "Events kept for this session but could not be saved to storage.",
		}, op)
		return
	case err != nil:
		slog.Error("couldnt add events", "op", op, "trace_id", TraceID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Couldnt add events.", op)
		return
	}

	status := http.StatusCreated
	if len(added) == 0 {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{
		"status": "success",
		"data":   added,
	}, op)
}

// HandleExportICS serves every event as an iCalendar file for import into
// any calendar client.
func (ch *CalendarHandler) HandleExportICS(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/calendar.go HandleExportICS"

	var (
		buf bytes.Buffer
		err error
	)
	ch.session.with(func(d *usecases.Diary) {
		err = d.WriteEventsICS(&buf)
	})
	if err != nil {
		slog.Error("couldnt export events", "op", op, "trace_id", TraceID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Couldnt export events.", op)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="diary_events.ics"`)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write calendar", "op", op, "error", err)
	}
}
