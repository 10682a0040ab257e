// internal/infra/database/postgres_notification_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"homework_status_bot/internal/domain/notification"
)

const createNotificationsTable = `CREATE TABLE IF NOT EXISTS bot_notifications (
	id          BIGSERIAL PRIMARY KEY,
	kind        TEXT        NOT NULL,
	chat_id     BIGINT      NOT NULL,
	text        TEXT        NOT NULL,
	delivered   BOOLEAN     NOT NULL,
	error_text  TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// Migrate creates the journal table if it does not exist yet.
func (r *PostgresNotificationRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createNotificationsTable); err != nil {
		return fmt.Errorf("error creating bot_notifications table: %w", err)
	}
	return nil
}

// Create inserts a notification attempt and fills in its ID.
// A zero CreatedAt is left to the database default.
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `INSERT INTO bot_notifications (kind, chat_id, text, delivered, error_text, created_at)
               VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
               RETURNING id, created_at`
	var createdAt sql.NullTime
	if !n.CreatedAt.IsZero() {
		createdAt = sql.NullTime{Time: n.CreatedAt, Valid: true}
	}
	err := r.db.QueryRowContext(ctx, query, n.Kind, n.ChatID, n.Text, n.Delivered, n.ErrorText, createdAt).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification record: %w", err)
	}
	return nil
}
