package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"student_diary/internal/models"
)

func loadEntries(ctx context.Context, tx pgx.Tx) ([]models.JournalEntry, error) {
	sql_query := `
	SELECT id, entry_date, content, mood, topics, word_count, created_at
	FROM journal_entries
	ORDER BY position;
	`

	rows, err := tx.Query(ctx, sql_query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var (
			entry  models.JournalEntry
			date   time.Time
			topics []string
		)

		err := rows.Scan(
			&entry.ID,
			&date,
			&entry.Content,
			&entry.Mood,
			&topics, // TEXT[] -> []string
			&entry.WordCount,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entry.Date = models.DateOf(date)
		entry.Topics = toTopicTags(topics)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func saveEntries(ctx context.Context, tx pgx.Tx, entries []models.JournalEntry) error {
	sql_query := `
	INSERT INTO journal_entries
	(position, id, entry_date, content, mood, topics, word_count, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	for i, entry := range entries {
		_, err := tx.Exec(ctx, sql_query,
			i,
			entry.ID,
			entry.Date.Time(),
			entry.Content,
			entry.Mood,
			fromTopicTags(entry.Topics),
			entry.WordCount,
			entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", entry.ID, err)
		}
	}
	return nil
}

func toTopicTags(topics []string) []models.TopicTag {
	tags := make([]models.TopicTag, 0, len(topics))
	for _, t := range topics {
		tags = append(tags, models.TopicTag(t))
	}
	return tags
}

func fromTopicTags(tags []models.TopicTag) []string {
	topics := make([]string, 0, len(tags))
	for _, t := range tags {
		topics = append(topics, string(t))
	}
	return topics
}
