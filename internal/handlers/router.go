package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"student_diary/internal/storage"
)

// NewRouter wires every diary endpoint. calendar may be nil, in which case
// the Google OAuth routes are not registered.
func NewRouter(session *Session, calendar *storage.GoogleCalendarStorage) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TraceMiddleware)

	journal := NewJournalHandler(session)
	events := NewCalendarHandler(session)

	r.Post("/entries", journal.HandleCreateEntry)
	r.Get("/entries", journal.HandleGetEntries)
	r.Get("/insights", journal.HandleInsights)
	r.Get("/reflection", journal.HandleReflection)
	r.Get("/stats", journal.HandleStats)
	r.Get("/mood", journal.HandleMoodHistory)
	r.Get("/export", journal.HandleExport)
	r.Delete("/data", journal.HandleClear)

	r.Get("/events", events.HandleGetEvents)
	r.Post("/events", events.HandleCreateEvents)
	r.Get("/events.ics", events.HandleExportICS)

	if calendar != nil {
		auth := NewAuthHandler(calendar)
		r.Get("/auth/google", auth.HandleGoogleLogin)
		r.Get("/auth/callback", auth.HandleGoogleCallback)
		r.Get("/auth/status", auth.HandleStatus)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
