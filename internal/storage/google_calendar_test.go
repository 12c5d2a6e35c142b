package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"student_diary/internal/models"
)

func TestToGoogleEvent(t *testing.T) {
	t.Parallel()

	event := models.CalendarEvent{
		ID:          7,
		Title:       "Exam",
		Date:        models.NewDate(2026, time.February, 28),
		Description: "Detected from diary entry",
		Category:    models.CategoryAcademic,
		Priority:    models.PriorityHigh,
	}

	got := toGoogleEvent(event)

	assert.Equal(t, "Exam", got.Summary)
	assert.Equal(t, "Detected from diary entry", got.Description)
	assert.Equal(t, "2026-02-28", got.Start.Date)
	assert.Equal(t, "2026-03-01", got.End.Date)
	assert.Empty(t, got.Start.DateTime)
	require.NotNil(t, got.ExtendedProperties)
	assert.Equal(t, "academic", got.ExtendedProperties.Private["diary_category"])
	assert.Equal(t, "high", got.ExtendedProperties.Private["diary_priority"])
}

func TestPublishEventRequiresAuthorization(t *testing.T) {
	t.Parallel()

	gcs := &GoogleCalendarStorage{calendarID: "primary"}

	assert.False(t, gcs.IsAuthorized())
	err := gcs.PublishEvent(context.Background(), models.CalendarEvent{Title: "Exam"})
	assert.ErrorIs(t, err, ErrCalendarNotAuthorized)
}

func TestTokenCache(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	saveToken(path, tok)

	loaded, err := tokenFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "access", loaded.AccessToken)
	assert.Equal(t, "refresh", loaded.RefreshToken)

	_, err = tokenFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewGoogleCalendarStorageWithoutToken(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	credentials := filepath.Join(dir, "credentials.json")
	require.NoError(t, writeFile(credentials, `{"installed":{"client_id":"id","client_secret":"secret","redirect_uris":["http://localhost:8080/auth/callback"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`))

	gcs, err := NewGoogleCalendarStorage(context.Background(), credentials, filepath.Join(dir, "token.json"), "primary")
	require.NoError(t, err)

	assert.False(t, gcs.IsAuthorized())
	assert.Contains(t, gcs.GetAuthURL("state-123"), "state=state-123")

	_, err = NewGoogleCalendarStorage(context.Background(), filepath.Join(dir, "missing.json"), "", "primary")
	assert.Error(t, err)
}

func TestAuthorizedClientOutlivesRequestContext(t *testing.T) {
	t.Parallel()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer apiServer.Close()

	gcs := &GoogleCalendarStorage{
		config: &oauth2.Config{
			ClientID:     "client",
			ClientSecret: "secret",
			Endpoint:     oauth2.Endpoint{TokenURL: tokenServer.URL, AuthStyle: oauth2.AuthStyleInParams},
		},
		calendarID: "primary",
	}

	// The callback request ends before the access token expires.
	requestCtx, cancel := context.WithCancel(context.Background())
	expired := &oauth2.Token{AccessToken: "stale", RefreshToken: "refresh", Expiry: time.Now().Add(-time.Hour)}
	client := gcs.authorizedClient(requestCtx, expired)
	cancel()

	resp, err := client.Get(apiServer.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestConnectWhilePublishing(t *testing.T) {
	t.Parallel()

	gcs := &GoogleCalendarStorage{
		config:     &oauth2.Config{ClientID: "client", Endpoint: oauth2.Endpoint{TokenURL: "http://127.0.0.1:0/token"}},
		calendarID: "primary",
	}
	assert.False(t, gcs.IsAuthorized())

	tok := &oauth2.Token{AccessToken: "token", Expiry: time.Now().Add(time.Hour)}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, gcs.connect(context.Background(), tok))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = gcs.IsAuthorized()
		}
	}()
	wg.Wait()

	assert.True(t, gcs.IsAuthorized())
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
