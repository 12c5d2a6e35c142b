package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"student_diary/internal/models"
)

var ErrCalendarNotAuthorized = errors.New("google calendar is not connected, visit /auth/google to authorize")

// GoogleCalendarStorage mirrors diary events into a Google calendar as
// all-day events.
type GoogleCalendarStorage struct {
	// service is nil until a token is available. It is swapped by the OAuth
	// callback while publishes may be running.
	service    atomic.Pointer[calendar.Service]
	config     *oauth2.Config
	tokenFile  string
	calendarID string
}

// NewGoogleCalendarStorage reads the OAuth client credentials. When a cached
// token exists the calendar service is ready immediately; otherwise the
// storage stays unauthorized until ExchangeCode succeeds.
func NewGoogleCalendarStorage(ctx context.Context, credentialsFile, tokenFile, calendarID string) (*GoogleCalendarStorage, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", credentialsFile, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}

	gcs := &GoogleCalendarStorage{config: config, tokenFile: tokenFile, calendarID: calendarID}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return gcs, nil
	}

	if err := gcs.connect(ctx, tok); err != nil {
		return nil, err
	}
	return gcs, nil
}

func (gcs *GoogleCalendarStorage) IsAuthorized() bool {
	return gcs.service.Load() != nil
}

func (gcs *GoogleCalendarStorage) GetAuthURL(state string) string {
	return gcs.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the OAuth callback code for a token, caches it and
// connects the calendar service.
func (gcs *GoogleCalendarStorage) ExchangeCode(ctx context.Context, code string) error {
	tok, err := gcs.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	saveToken(gcs.tokenFile, tok)

	return gcs.connect(ctx, tok)
}

func (gcs *GoogleCalendarStorage) connect(ctx context.Context, tok *oauth2.Token) error {
	service, err := calendar.NewService(context.WithoutCancel(ctx), option.WithHTTPClient(gcs.authorizedClient(ctx, tok)))
	if err != nil {
		return fmt.Errorf("failed to create Calendar service: %w", err)
	}
	gcs.service.Store(service)
	return nil
}

// authorizedClient refreshes tokens with a context detached from ctx's
// cancellation; ctx is usually the OAuth callback request.
func (gcs *GoogleCalendarStorage) authorizedClient(ctx context.Context, tok *oauth2.Token) *http.Client {
	return gcs.config.Client(context.WithoutCancel(ctx), tok)
}

func (gcs *GoogleCalendarStorage) PublishEvent(ctx context.Context, event models.CalendarEvent) error {
	service := gcs.service.Load()
	if service == nil {
		return ErrCalendarNotAuthorized
	}

	_, err := service.Events.Insert(gcs.calendarID, toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert event %q: %w", event.Title, err)
	}
	return nil
}

// toGoogleEvent maps a diary event onto an all-day Google event. The end
// date of an all-day event is exclusive.
func toGoogleEvent(event models.CalendarEvent) *calendar.Event {
	return &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start:       &calendar.EventDateTime{Date: event.Date.String()},
		End:         &calendar.EventDateTime{Date: event.Date.AddDays(1).String()},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"diary_category": string(event.Category),
				"diary_priority": string(event.Priority),
			},
		},
	}
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		slog.Warn("unable to cache oauth token", "path", path, "error", err)
		return
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(token); err != nil {
		slog.Warn("unable to write oauth token", "path", path, "error", err)
	}
}
