package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database. It is the
// calendar store: it assigns event ids on insert.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

const eventColumns = `id, title, start_at, end_at, resource_id, phase, tags, tile_id, project_id`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	tags, err := encodeTags(e.Tags)
	if err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO calendar_events (` + eventColumns + `, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		timeToString(e.Start),
		timeToString(e.End),
		e.ResourceID,
		string(e.Phase),
		tags,
		e.Meta.TileID,
		e.Meta.ProjectID,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("calendar event %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}

func (r *SQLiteEventRepo) List(ctx context.Context, filter EventFilter) ([]domain.CalendarEvent, error) {
	var where []string
	var args []any
	if filter.ResourceID != "" {
		where = append(where, "resource_id = ?")
		args = append(args, filter.ResourceID)
	}
	if filter.ProjectID != "" {
		where = append(where, "project_id = ?")
		args = append(args, filter.ProjectID)
	}
	if filter.TileID != "" {
		where = append(where, "tile_id = ?")
		args = append(args, filter.TileID)
	}
	if !filter.To.IsZero() {
		where = append(where, "start_at < ?")
		args = append(args, timeToString(filter.To))
	}
	if !filter.From.IsZero() {
		where = append(where, "end_at > ?")
		args = append(args, timeToString(filter.From))
	}

	query := `SELECT ` + eventColumns + ` FROM calendar_events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY start_at, end_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting calendar event: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("calendar event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanEvent(row rowScanner) (domain.CalendarEvent, error) {
	var e domain.CalendarEvent
	var startStr, endStr, phase, tags string
	err := row.Scan(&e.ID, &e.Title, &startStr, &endStr, &e.ResourceID, &phase, &tags, &e.Meta.TileID, &e.Meta.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("scanning calendar event: %w", err)
	}
	e.Phase = domain.Phase(phase)
	if e.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
		return e, fmt.Errorf("parsing start_at: %w", err)
	}
	if e.End, err = time.Parse(time.RFC3339, endStr); err != nil {
		return e, fmt.Errorf("parsing end_at: %w", err)
	}
	if e.Tags, err = decodeTags(tags); err != nil {
		return e, err
	}
	return e, nil
}
