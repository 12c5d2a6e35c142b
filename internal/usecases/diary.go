package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"student_diary/internal/models"
)

// DocumentStore persists the whole diary document. Save must replace the
// stored document atomically.
type DocumentStore interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

// EventPublisher mirrors newly added events to an external calendar.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event models.CalendarEvent) error
}

type SaveResult struct {
	Entry     models.JournalEntry    `json:"entry"`
	Analysis  models.Classification  `json:"analysis"`
	NewEvents []models.CalendarEvent `json:"new_events"`
}

type Analysis struct {
	Entry          models.JournalEntry   `json:"entry"`
	Classification models.Classification `json:"classification"`
}

// Export is the downloadable backup of the whole diary.
type Export struct {
	*models.Document
	ExportDate time.Time `json:"export_date"`
}

type Stats struct {
	TotalEntries int              `json:"total_entries"`
	Streak       int              `json:"streak"`
	Mood         models.MoodStats `json:"mood"`
}

// Diary owns one user's diary state and is the only way to change it.
// It is not safe for concurrent use.
type Diary struct {
	store     DocumentStore
	clock     Clock
	publisher EventPublisher
	logger    *slog.Logger

	rules      RuleSet
	eventRules EventRules
	templates  ReflectionTemplates

	classifier  *Classifier
	reflections *ReflectionComposer
	extractor   *EventExtractor

	sampleData    bool
	moodWindow    int
	upcomingLimit int

	doc *models.Document
}

type Option func(*Diary)

func WithRuleSet(rules RuleSet) Option {
	return func(d *Diary) { d.rules = rules }
}

func WithEventRules(rules EventRules) Option {
	return func(d *Diary) { d.eventRules = rules }
}

func WithReflectionTemplates(templates ReflectionTemplates) Option {
	return func(d *Diary) { d.templates = templates }
}

func WithPublisher(p EventPublisher) Option {
	return func(d *Diary) { d.publisher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Diary) { d.logger = l }
}

// WithSampleData makes Load fall back to the demonstration data set instead
// of an empty diary.
func WithSampleData(enabled bool) Option {
	return func(d *Diary) { d.sampleData = enabled }
}

func WithMoodWindow(n int) Option {
	return func(d *Diary) { d.moodWindow = n }
}

func WithUpcomingLimit(n int) Option {
	return func(d *Diary) { d.upcomingLimit = n }
}

func NewDiary(store DocumentStore, clock Clock, opts ...Option) *Diary {
	d := &Diary{
		store:         store,
		clock:         clock,
		logger:        slog.Default(),
		rules:         DefaultRuleSet(),
		eventRules:    DefaultEventRules(),
		templates:     DefaultReflectionTemplates(),
		moodWindow:    7,
		upcomingLimit: 10,
		doc:           models.NewDocument(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.classifier = NewClassifier(d.rules)
	d.reflections = NewReflectionComposer(d.classifier, d.templates)
	d.extractor = NewEventExtractor(d.eventRules)

	return d
}

// Load replaces the in-memory state with the stored document. Any failure,
// including a document that does not validate, falls back to the default
// document; Load itself never fails.
func (d *Diary) Load(ctx context.Context) {
	op := "usecases.Diary.Load"

	doc, err := d.store.Load(ctx)
	if err == nil && doc == nil {
		err = errors.New("store returned no document")
	}
	if err == nil {
		doc.Normalize()
		err = doc.Validate()
	}

	if err != nil {
		d.logger.Warn("using default diary document", "op", op, "sample_data", d.sampleData, "error", err)
		d.doc = d.fallbackDocument()
		return
	}

	d.logger.Info("diary loaded", "op", op,
		"entries", len(doc.Entries),
		"events", len(doc.Events),
		"mood_samples", len(doc.MoodHistory))
	d.doc = doc
}

func (d *Diary) fallbackDocument() *models.Document {
	if d.sampleData {
		return models.SampleDocument()
	}
	return models.NewDocument()
}

// SaveEntry records a new entry, its mood sample and any events it
// mentions. Validation errors leave the diary untouched. If only the
// persistence step fails, the result is returned together with an error
// wrapping ErrPersist.
func (d *Diary) SaveEntry(ctx context.Context, text string, mood *int) (*SaveResult, error) {
	op := "usecases.Diary.SaveEntry"

	content := strings.TrimSpace(text)
	if content == "" && mood == nil {
		return nil, ErrEmptyEntry
	}
	if mood != nil && (*mood < 1 || *mood > 10) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMood, *mood)
	}

	now := d.clock.Now()
	date := models.DateOf(now)
	analysis := d.classifier.Classify(content, mood)

	entry := models.JournalEntry{
		ID:        nextEntryID(d.doc.Entries),
		Date:      date,
		Content:   content,
		Topics:    analysis.Topics,
		WordCount: wordCount(content),
		CreatedAt: now,
	}
	if mood != nil {
		m := *mood
		entry.Mood = &m
		d.doc.MoodHistory = append(d.doc.MoodHistory, models.MoodSample{
			Date: date,
			Mood: m,
			Note: moodNote(content),
		})
	}
	d.doc.Entries = append(d.doc.Entries, entry)

	candidates := d.extractor.Extract(content, now, d.doc.Events)
	merged, added := MergeEvents(d.doc.Events, candidates)
	d.doc.Events = merged
	d.publish(ctx, added)

	d.logger.Debug("entry saved", "op", op,
		"entry_id", entry.ID,
		"sentiment", analysis.Sentiment,
		"new_events", len(added))

	result := &SaveResult{
		Entry:     entry.Clone(),
		Analysis:  analysis,
		NewEvents: added,
	}
	return result, d.persist(ctx, op)
}

func nextEntryID(entries []models.JournalEntry) int {
	maxID := 0
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// AddEvent adds a manually entered event. A title+date duplicate is dropped
// and reported with added=false.
func (d *Diary) AddEvent(ctx context.Context, title string, date models.Date, category models.EventCategory) (models.CalendarEvent, bool, error) {
	event := models.CalendarEvent{
		Title:       strings.TrimSpace(title),
		Date:        date,
		Description: manualEventDescription,
		Category:    category,
		Priority:    models.PriorityMedium,
	}

	added, err := d.addEvents(ctx, "usecases.Diary.AddEvent", []models.CalendarEvent{event})
	if len(added) == 0 {
		return event, false, err
	}
	return added[0], true, err
}

// ImportEvents adds the events of a JSON payload holding one event object or
// an array of them, dropping title+date duplicates.
func (d *Diary) ImportEvents(ctx context.Context, payload []byte) ([]models.CalendarEvent, error) {
	events, err := ParseEventsJSON(payload)
	if err != nil {
		return nil, err
	}
	return d.addEvents(ctx, "usecases.Diary.ImportEvents", events)
}

func (d *Diary) addEvents(ctx context.Context, op string, events []models.CalendarEvent) ([]models.CalendarEvent, error) {
	nextID := NextEventID(d.doc.Events)
	for _, e := range events {
		e.ID = nextID
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
		}
	}

	merged, added := MergeEvents(d.doc.Events, events)
	if len(added) == 0 {
		return added, nil
	}
	d.doc.Events = merged
	d.publish(ctx, added)

	return added, d.persist(ctx, op)
}

func (d *Diary) publish(ctx context.Context, events []models.CalendarEvent) {
	if d.publisher == nil {
		return
	}
	for _, e := range events {
		if err := d.publisher.PublishEvent(ctx, e); err != nil {
			d.logger.Warn("failed to publish event", "op", "usecases.Diary.publish", "event_id", e.ID, "title", e.Title, "error", err)
		}
	}
}

func (d *Diary) persist(ctx context.Context, op string) error {
	if err := d.store.Save(ctx, d.doc.Clone()); err != nil {
		d.logger.Error("failed to save diary", "op", op, "error", err)
		return fmt.Errorf("%s: %w: %w", op, ErrPersist, err)
	}
	return nil
}

// Entries returns the newest limit entries in chronological order. limit <= 0
// returns all of them.
func (d *Diary) Entries(limit int) []models.JournalEntry {
	entries := d.doc.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	out := make([]models.JournalEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// LatestAnalysis classifies the most recent entry. ok is false when the
// diary is empty.
func (d *Diary) LatestAnalysis() (analysis Analysis, ok bool) {
	if len(d.doc.Entries) == 0 {
		return Analysis{}, false
	}

	latest := d.doc.Entries[len(d.doc.Entries)-1]
	return Analysis{
		Entry:          latest.Clone(),
		Classification: d.classifier.Classify(latest.Content, latest.Mood),
	}, true
}

// MorningReflection composes the reflection for the latest entry written
// before today.
func (d *Diary) MorningReflection() models.Reflection {
	return d.reflections.Compose(d.previousEntry(today(d.clock)))
}

// previousEntry picks by date, not slice order; imported documents may list
// entries newest first. On a tie the later entry wins.
func (d *Diary) previousEntry(day models.Date) *models.JournalEntry {
	latest := -1
	for i, e := range d.doc.Entries {
		if !e.Date.Before(day) {
			continue
		}
		if latest < 0 || !e.Date.Before(d.doc.Entries[latest].Date) {
			latest = i
		}
	}
	if latest < 0 {
		return nil
	}
	prev := d.doc.Entries[latest].Clone()
	return &prev
}

func (d *Diary) UpcomingEvents(limit int) []models.UpcomingEvent {
	if limit <= 0 {
		limit = d.upcomingLimit
	}
	return UpcomingEvents(d.doc.Events, today(d.clock), limit)
}

// MoodHistory returns the newest limit samples in input order.
func (d *Diary) MoodHistory(limit int) []models.MoodSample {
	history := d.doc.MoodHistory
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return append([]models.MoodSample{}, history...)
}

func (d *Diary) Stats() Stats {
	return Stats{
		TotalEntries: len(d.doc.Entries),
		Streak:       Streak(d.doc.Entries, today(d.clock)),
		Mood:         AggregateMood(d.doc.MoodHistory, d.moodWindow),
	}
}

// Clear drops all diary data and persists the empty document.
func (d *Diary) Clear(ctx context.Context) error {
	d.doc = models.NewDocument()
	return d.persist(ctx, "usecases.Diary.Clear")
}

// Document returns a copy of the current state.
func (d *Diary) Document() *models.Document {
	return d.doc.Clone()
}

func (d *Diary) Export() Export {
	return Export{Document: d.doc.Clone(), ExportDate: d.clock.Now()}
}

// WriteEventsICS writes every calendar event as an iCalendar feed.
func (d *Diary) WriteEventsICS(w io.Writer) error {
	return WriteICS(w, d.doc.Events, d.clock.Now())
}
