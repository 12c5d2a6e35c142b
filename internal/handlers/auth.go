package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"student_diary/internal/storage"
)

type AuthHandler struct {
	calendarStorage *storage.GoogleCalendarStorage

	mu    sync.Mutex
	state string
}

func NewAuthHandler(cs *storage.GoogleCalendarStorage) *AuthHandler {
	return &AuthHandler{calendarStorage: cs}
}

// /auth/google -> redirect to google
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.state = uuid.NewString()
	state := h.state
	h.mu.Unlock()

	http.Redirect(w, r, h.calendarStorage.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// /auth/callback -> Google sends the code here
func (h *AuthHandler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/auth.go HandleGoogleCallback"

	h.mu.Lock()
	expected := h.state
	h.state = ""
	h.mu.Unlock()

	if expected == "" || r.URL.Query().Get("state") != expected {
		http.Error(w, "Invalid state", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	if err := h.calendarStorage.ExchangeCode(r.Context(), code); err != nil {
		slog.Error("failed to exchange code", "op", op, "error", err)
		http.Error(w, "Failed to exchange code: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Fprintf(w, "Calendar connected! You can close this window and return to your diary.")
}

// /auth/status -> whether a calendar token is loaded
func (h *AuthHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/auth.go HandleStatus"

	writeJSON(w, http.StatusOK, map[string]any{
		"connected": h.calendarStorage.IsAuthorized(),
	}, op)
}
