package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, payload any, op string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "op", op, "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, op string) {
	writeJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	}, op)
}

// limitParam reads ?limit=N, falling back to def for missing or invalid
// values.
func limitParam(r *http.Request, def int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return def
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
