package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"student_diary/internal/models"
	"student_diary/internal/usecases"
)

type JournalHandler struct {
	session *Session
}

func NewJournalHandler(s *Session) *JournalHandler {
	return &JournalHandler{session: s}
}

type createEntryRequest struct {
	Text string `json:"text"`
	Mood *int   `json:"mood"`
}

type createEntryResponse struct {
	*usecases.SaveResult
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

func (jh *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleCreateEntry"

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Info("couldnt decode entry request", "op", op, "trace_id", TraceID(r.Context()), "error", err)
		writeError(w, http.StatusBadRequest, "Couldnt decode json. Wrong request.", op)
		return
	}

	var (
		result *usecases.SaveResult
		err    error
	)
	jh.session.with(func(d *usecases.Diary) {
		result, err = d.SaveEntry(r.Context(), req.Text, req.Mood)
	})

	switch {
	case errors.Is(err, usecases.ErrEmptyEntry), errors.Is(err, usecases.ErrInvalidMood):
		writeError(w, http.StatusBadRequest, err.Error(), op)
		return
	case errors.Is(err, usecases.ErrPersist):
		writeJSON(w, http.StatusCreated, createEntryResponse{
			SaveResult: result,
			Status:     "created",
			Warning:    "Entry kept for this session but could not be saved to storage.",
		}, op)
		return
	case err != nil:
		slog.Error("couldnt create entry", "op", op, "trace_id", TraceID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Couldnt create entry.", op)
		return
	}

	writeJSON(w, http.StatusCreated, createEntryResponse{SaveResult: result, Status: "created"}, op)
}

func (jh *JournalHandler) HandleGetEntries(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleGetEntries"

	limit := limitParam(r, 10)

	var entries []models.JournalEntry
	jh.session.with(func(d *usecases.Diary) {
		entries = d.Entries(limit)
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   entries,
	}, op)
}

func (jh *JournalHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleInsights"

	var (
		analysis usecases.Analysis
		ok       bool
	)
	jh.session.with(func(d *usecases.Diary) {
		analysis, ok = d.LatestAnalysis()
	})

	if !ok {
		writeError(w, http.StatusNotFound, "Write your first diary entry to see insights!", op)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"data":     analysis,
		"insights": usecases.Insights(analysis.Classification),
	}, op)
}

func (jh *JournalHandler) HandleReflection(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleReflection"

	var reflection models.Reflection
	jh.session.with(func(d *usecases.Diary) {
		reflection = d.MorningReflection()
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   reflection,
	}, op)
}

func (jh *JournalHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleStats"

	var stats usecases.Stats
	jh.session.with(func(d *usecases.Diary) {
		stats = d.Stats()
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   stats,
	}, op)
}

func (jh *JournalHandler) HandleMoodHistory(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleMoodHistory"

	limit := limitParam(r, 7)

	var history []models.MoodSample
	jh.session.with(func(d *usecases.Diary) {
		history = d.MoodHistory(limit)
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   history,
	}, op)
}

func (jh *JournalHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleClear"

	var err error
	jh.session.with(func(d *usecases.Diary) {
		err = d.Clear(r.Context())
	})

	if err != nil {
		slog.Error("couldnt persist cleared diary", "op", op, "trace_id", TraceID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Data cleared for this session but could not be saved.", op)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "All data cleared successfully!",
	}, op)
}

// HandleExport serves the whole diary as a JSON backup download.
func (jh *JournalHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleExport"

	var export usecases.Export
	jh.session.with(func(d *usecases.Diary) {
		export = d.Export()
	})

	filename := fmt.Sprintf("diary_backup_%s.json", export.ExportDate.Format("20060102_150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writeJSON(w, http.StatusOK, export, op)
}
