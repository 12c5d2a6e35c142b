package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"student_diary/internal/models"
)

func loadEvents(ctx context.Context, tx pgx.Tx) ([]models.CalendarEvent, error) {
	sql_query := `
	SELECT id, title, event_date, description, category, priority
	FROM calendar_events
	ORDER BY position;
	`

	rows, err := tx.Query(ctx, sql_query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var (
			event models.CalendarEvent
			date  time.Time
		)

		err := rows.Scan(
			&event.ID,
			&event.Title,
			&date,
			&event.Description,
			&event.Category,
			&event.Priority,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		event.Date = models.DateOf(date)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

func saveEvents(ctx context.Context, tx pgx.Tx, events []models.CalendarEvent) error {
	sql_query := `
	INSERT INTO calendar_events
	(position, id, title, event_date, description, category, priority)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	for i, event := range events {
		_, err := tx.Exec(ctx, sql_query,
			i,
			event.ID,
			event.Title,
			event.Date.Time(),
			event.Description,
			string(event.Category),
			string(event.Priority),
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %d: %w", event.ID, err)
		}
	}
	return nil
}
