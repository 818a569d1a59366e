package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sid-c23/cs6440-project/internal/models"
)

type eventRepoPG struct {
	pool *pgxpool.Pool
}

// NewEventRepo creates a PostgreSQL-backed event repository.
func NewEventRepo(pool *pgxpool.Pool) EventRepository {
	return &eventRepoPG{pool: pool}
}

const eventCols = `id, user_id, event_type, event_timestamp, severity,
	numerical_value, numerical_unit, description, system, code,
	creation_timestamp, update_timestamp`

func (r *eventRepoPG) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = uuid.NewString()
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (
			id, user_id, event_type, event_timestamp, severity,
			numerical_value, numerical_unit, description, system, code,
			creation_timestamp, update_timestamp
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		event.ID, event.UserID, event.EventType, event.EventTimestamp, event.Severity,
		event.NumericalValue, event.NumericalUnit, event.Description, event.System, event.Code,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (r *eventRepoPG) GetByUserID(ctx context.Context, userID string, filter EventFilter, limit, offset int) ([]models.Event, error) {
	query := `SELECT ` + eventCols + ` FROM events WHERE user_id = $1`
	args := []any{userID}

	if filter.EventType != nil {
		args = append(args, *filter.EventType)
		query += fmt.Sprintf(" AND event_type = $%d", len(args))
	}
	if filter.ExcludeMigraine {
		args = append(args, models.EventTypeMigraine)
		query += fmt.Sprintf(" AND event_type <> $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY creation_timestamp DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *eventRepoPG) GetAllByUserID(ctx context.Context, userID string) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventCols+` FROM events WHERE user_id = $1 ORDER BY event_timestamp`, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.UserID, &e.EventType, &e.EventTimestamp, &e.Severity,
			&e.NumericalValue, &e.NumericalUnit, &e.Description, &e.System, &e.Code,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return events, nil
}
