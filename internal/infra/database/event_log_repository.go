package database

import (
	"context"
	"database/sql"

	"github.com/Ibrakam/Sales-Machine/internal/infra/queue"
)

// EventLogRepository arquiva os eventos de lead processados pelo worker.
// Tabela esperada:
//
//	CREATE TABLE lead_events (
//	    id          BIGSERIAL PRIMARY KEY,
//	    event       TEXT NOT NULL,
//	    lead_id     INTEGER,
//	    name        TEXT,
//	    status      TEXT,
//	    source      TEXT,
//	    synced      INTEGER,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type EventLogRepository struct {
	DB *sql.DB
}

func NewEventLogRepository(db *sql.DB) *EventLogRepository {
	return &EventLogRepository{DB: db}
}

func (r *EventLogRepository) Insert(ctx context.Context, payload queue.LeadEventPayload) error {
	query := `
		INSERT INTO lead_events (event, lead_id, name, status, source, synced, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		payload.Event,
		nullInt(payload.LeadID),
		nullString(payload.Name),
		nullString(payload.Status),
		nullString(payload.Source),
		nullInt(payload.SyncedCount),
		payload.OccurredAt,
	)

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt(i int) *int {
	if i == 0 {
		return nil
	}
	return &i
}
