package storage

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"student_diary/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresStorage stores the diary document across four tables. Rows carry
// their array position so a load reproduces the saved order.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		pool: pool,
	}
}

// Migrate applies the embedded goose migrations through a database/sql
// handle borrowed from the pool.
func (db_ps *PostgresStorage) Migrate(ctx context.Context) error {
	op := "internal/storage/postgres.go Migrate"

	db := stdlib.OpenDBFromPool(db_ps.pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("%s: failed to migrate: %w", op, err)
	}
	return nil
}

// gooseLogger routes goose output to slog. Fatalf must not exit the process.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrations")
}

func (db_ps *PostgresStorage) Load(ctx context.Context) (*models.Document, error) {
	op := "internal/storage/postgres.go Load"

	tx, err := db_ps.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	doc := models.NewDocument()
	if doc.Entries, err = loadEntries(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if doc.Events, err = loadEvents(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if doc.MoodHistory, err = loadMoodHistory(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if doc.Insights, err = loadInsights(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if isEmpty(doc) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return doc, nil
}

// Save replaces every stored row inside one transaction; on failure the
// previous document stays in place.
func (db_ps *PostgresStorage) Save(ctx context.Context, doc *models.Document) error {
	op := "internal/storage/postgres.go Save"

	tx, err := db_ps.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"journal_entries", "calendar_events", "mood_history", "insights"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%s: failed to clear %s: %w", op, table, err)
		}
	}

	if err := saveEntries(ctx, tx, doc.Entries); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := saveEvents(ctx, tx, doc.Events); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := saveMoodHistory(ctx, tx, doc.MoodHistory); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := saveInsights(ctx, tx, doc.Insights); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}
	return nil
}

func isEmpty(doc *models.Document) bool {
	return len(doc.Entries) == 0 && len(doc.Events) == 0 &&
		len(doc.MoodHistory) == 0 && len(doc.Insights) == 0
}
