package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"student_diary/internal/models"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		position   INTEGER PRIMARY KEY,
		id         INTEGER NOT NULL UNIQUE,
		entry_date TEXT NOT NULL,
		content    TEXT NOT NULL,
		mood       INTEGER,
		topics     TEXT NOT NULL DEFAULT '[]',
		word_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS calendar_events (
		position    INTEGER PRIMARY KEY,
		id          INTEGER NOT NULL UNIQUE,
		title       TEXT NOT NULL,
		event_date  TEXT NOT NULL,
		description TEXT NOT NULL,
		category    TEXT NOT NULL,
		priority    TEXT NOT NULL,
		UNIQUE (title, event_date)
	)`,
	`CREATE TABLE IF NOT EXISTS mood_history (
		position    INTEGER PRIMARY KEY,
		sample_date TEXT NOT NULL,
		mood        INTEGER NOT NULL,
		note        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS insights (
		position INTEGER PRIMARY KEY,
		message  TEXT NOT NULL
	)`,
}

// SQLiteStorage is the embedded-database variant of PostgresStorage with the
// same tables. Dates are stored as YYYY-MM-DD text and topics as a JSON
// array.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens the database at path and creates the schema.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises
	// writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range sqliteSchema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: failed to create schema: %w", err)
		}
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) Load(ctx context.Context) (*models.Document, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	doc := models.NewDocument()
	if doc.Entries, err = s.loadEntries(ctx, tx); err != nil {
		return nil, err
	}
	if doc.Events, err = s.loadEvents(ctx, tx); err != nil {
		return nil, err
	}
	if doc.MoodHistory, err = s.loadMoodHistory(ctx, tx); err != nil {
		return nil, err
	}
	if doc.Insights, err = s.loadInsights(ctx, tx); err != nil {
		return nil, err
	}

	if isEmpty(doc) {
		return nil, fmt.Errorf("sqlite: %w", ErrNotFound)
	}
	return doc, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, doc *models.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"journal_entries", "calendar_events", "mood_history", "insights"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("sqlite: failed to clear %s: %w", table, err)
		}
	}

	for i, e := range doc.Entries {
		topics, err := json.Marshal(fromTopicTags(e.Topics))
		if err != nil {
			return fmt.Errorf("sqlite: failed to encode topics: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO journal_entries (position, id, entry_date, content, mood, topics, word_count, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.Date.String(), e.Content, e.Mood, string(topics), e.WordCount, e.CreatedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("sqlite: failed to insert entry %d: %w", e.ID, err)
		}
	}

	for i, e := range doc.Events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO calendar_events (position, id, title, event_date, description, category, priority)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, e.ID, e.Title, e.Date.String(), e.Description, string(e.Category), string(e.Priority))
		if err != nil {
			return fmt.Errorf("sqlite: failed to insert event %d: %w", e.ID, err)
		}
	}

	for i, m := range doc.MoodHistory {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO mood_history (position, sample_date, mood, note) VALUES (?, ?, ?, ?)`,
			i, m.Date.String(), m.Mood, m.Note)
		if err != nil {
			return fmt.Errorf("sqlite: failed to insert mood sample %d: %w", i, err)
		}
	}

	for i, msg := range doc.Insights {
		if _, err := tx.ExecContext(ctx, `INSERT INTO insights (position, message) VALUES (?, ?)`, i, msg); err != nil {
			return fmt.Errorf("sqlite: failed to insert insight %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: failed to commit: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) loadEntries(ctx context.Context, tx *sql.Tx) ([]models.JournalEntry, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, entry_date, content, mood, topics, word_count, created_at
		 FROM journal_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var (
			e                       models.JournalEntry
			date, topics, createdAt string
			mood                    sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &date, &e.Content, &mood, &topics, &e.WordCount, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan entry: %w", err)
		}

		if e.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("sqlite: entry %d: %w", e.ID, err)
		}
		if mood.Valid {
			m := int(mood.Int64)
			e.Mood = &m
		}
		var tags []string
		if err := json.Unmarshal([]byte(topics), &tags); err != nil {
			return nil, fmt.Errorf("sqlite: entry %d: failed to decode topics: %w", e.ID, err)
		}
		e.Topics = toTopicTags(tags)
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: entry %d: invalid created_at: %w", e.ID, err)
		}

		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStorage) loadEvents(ctx context.Context, tx *sql.Tx) ([]models.CalendarEvent, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, title, event_date, description, category, priority
		 FROM calendar_events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var (
			e                        models.CalendarEvent
			date, category, priority string
		)
		if err := rows.Scan(&e.ID, &e.Title, &date, &e.Description, &category, &priority); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan event: %w", err)
		}
		if e.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("sqlite: event %d: %w", e.ID, err)
		}
		e.Category = models.EventCategory(category)
		e.Priority = models.EventPriority(priority)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLiteStorage) loadMoodHistory(ctx context.Context, tx *sql.Tx) ([]models.MoodSample, error) {
	rows, err := tx.QueryContext(ctx, `SELECT sample_date, mood, note FROM mood_history ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query mood history: %w", err)
	}
	defer rows.Close()

	history := []models.MoodSample{}
	for rows.Next() {
		var (
			m    models.MoodSample
			date string
		)
		if err := rows.Scan(&date, &m.Mood, &m.Note); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan mood sample: %w", err)
		}
		if m.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("sqlite: mood sample: %w", err)
		}
		history = append(history, m)
	}
	return history, rows.Err()
}

func (s *SQLiteStorage) loadInsights(ctx context.Context, tx *sql.Tx) ([]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT message FROM insights ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query insights: %w", err)
	}
	defer rows.Close()

	insights := []string{}
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("sqlite: failed to scan insight: %w", err)
		}
		insights = append(insights, msg)
	}
	return insights, rows.Err()
}
