package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"student_diary/internal/models"
)

func loadMoodHistory(ctx context.Context, tx pgx.Tx) ([]models.MoodSample, error) {
	sql_query := `
	SELECT sample_date, mood, note FROM mood_history
	ORDER BY position;
	`

	rows, err := tx.Query(ctx, sql_query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood history: %w", err)
	}
	defer rows.Close()

	history := []models.MoodSample{}
	for rows.Next() {
		var (
			sample models.MoodSample
			date   time.Time
		)
		if err := rows.Scan(&date, &sample.Mood, &sample.Note); err != nil {
			return nil, fmt.Errorf("failed to scan mood sample: %w", err)
		}
		sample.Date = models.DateOf(date)
		history = append(history, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood history: %w", err)
	}
	return history, nil
}

func saveMoodHistory(ctx context.Context, tx pgx.Tx, history []models.MoodSample) error {
	sql_query := `
	INSERT INTO mood_history (position, sample_date, mood, note)
	VALUES ($1, $2, $3, $4);
	`

	for i, sample := range history {
		if _, err := tx.Exec(ctx, sql_query, i, sample.Date.Time(), sample.Mood, sample.Note); err != nil {
			return fmt.Errorf("failed to insert mood sample %d: %w", i, err)
		}
	}
	return nil
}

func loadInsights(ctx context.Context, tx pgx.Tx) ([]string, error) {
	rows, err := tx.Query(ctx, `SELECT message FROM insights ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}

	insights, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read insights: %w", err)
	}
	return insights, nil
}

func saveInsights(ctx context.Context, tx pgx.Tx, insights []string) error {
	for i, msg := range insights {
		if _, err := tx.Exec(ctx, `INSERT INTO insights (position, message) VALUES ($1, $2)`, i, msg); err != nil {
			return fmt.Errorf("failed to insert insight %d: %w", i, err)
		}
	}
	return nil
}
