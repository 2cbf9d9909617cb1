package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteTileRepo implements TileRepo using a SQLite database. A tile is
// stored across tiles, bom_lines and tile_dependencies; callers wanting the
// writes to be atomic run the repo inside a UnitOfWork.
type SQLiteTileRepo struct {
	db db.DBTX
}

// NewSQLiteTileRepo creates a new SQLiteTileRepo.
func NewSQLiteTileRepo(db db.DBTX) *SQLiteTileRepo {
	return &SQLiteTileRepo{db: db}
}

const tileColumns = `id, project_id, name, status, labor_cost, priority, designer, technology, deadline, version, created_at, updated_at`

func (r *SQLiteTileRepo) Create(ctx context.Context, t *domain.Tile) error {
	if t.Version == 0 {
		t.Version = 1
	}
	var projectID interface{}
	if t.ProjectID != "" {
		projectID = t.ProjectID
	}
	query := `INSERT INTO tiles (` + tileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		projectID,
		t.Name,
		string(t.Status),
		t.LaborCost,
		string(t.Priority),
		t.Designer,
		t.Technology,
		nullableTimeToString(t.Deadline, dateLayout),
		t.Version,
		timeToString(t.CreatedAt),
		timeToString(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting tile: %w", err)
	}

	if err := r.insertBOM(ctx, t); err != nil {
		return err
	}
	deps := NewSQLiteDependencyRepo(r.db)
	for _, depID := range t.Dependencies {
		if err := deps.Create(ctx, domain.TileDependency{TileID: t.ID, DependsOnID: depID}); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTileRepo) GetByID(ctx context.Context, id string) (*domain.Tile, error) {
	query := `SELECT ` + tileColumns + ` FROM tiles WHERE id = ?`
	t, err := r.scanTile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTileRepo) List(ctx context.Context, filter TileFilter) ([]*domain.Tile, error) {
	var where []string
	var args []any
	if filter.ProjectID != "" {
		where = append(where, "project_id = ?")
		args = append(args, filter.ProjectID)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	query := `SELECT ` + tileColumns + ` FROM tiles`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	tiles, err := r.queryTiles(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	// Children are loaded after the tile rows are closed: the pool holds a
	// single connection.
	for _, t := range tiles {
		if err := r.loadChildren(ctx, t); err != nil {
			return nil, err
		}
	}
	return tiles, nil
}

func (r *SQLiteTileRepo) UpdateStatus(ctx context.Context, t *domain.Tile) error {
	query := `UPDATE tiles SET status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`
	res, err := r.db.ExecContext(ctx, query, string(t.Status), timeToString(t.UpdatedAt), t.ID, t.Version)
	if err != nil {
		return fmt.Errorf("updating tile status: %w", err)
	}
	return r.checkVersion(ctx, res, t)
}

func (r *SQLiteTileRepo) ReplaceBOM(ctx context.Context, t *domain.Tile) error {
	query := `UPDATE tiles SET version = version + 1, updated_at = ? WHERE id = ? AND version = ?`
	res, err := r.db.ExecContext(ctx, query, timeToString(t.UpdatedAt), t.ID, t.Version)
	if err != nil {
		return fmt.Errorf("bumping tile version: %w", err)
	}
	if err := r.checkVersion(ctx, res, t); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bom_lines WHERE tile_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing BOM lines: %w", err)
	}
	return r.insertBOM(ctx, t)
}

func (r *SQLiteTileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tile: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteTileRepo) checkVersion(ctx context.Context, res sql.Result, t *domain.Tile) error {
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tiles WHERE id = ?`, t.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking tile existence: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("tile %s: %w", t.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("tile %s at version %d: %w", t.ID, t.Version, domain.ErrVersionConflict)
	}
	t.Version++
	return nil
}

func (r *SQLiteTileRepo) insertBOM(ctx context.Context, t *domain.Tile) error {
	query := `INSERT INTO bom_lines (id, tile_id, position, type, name, quantity, unit, unit_cost, status, supplier, material_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range t.BOM {
		line := &t.BOM[i]
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		_, err := r.db.ExecContext(ctx, query,
			line.ID,
			t.ID,
			i,
			string(line.Type),
			line.Name,
			line.Quantity,
			line.Unit,
			nullableFloatToValue(line.UnitCost),
			string(line.Status),
			line.Supplier,
			line.MaterialID,
		)
		if err != nil {
			return fmt.Errorf("inserting BOM line %q: %w", line.Name, err)
		}
	}
	return nil
}

func (r *SQLiteTileRepo) loadChildren(ctx context.Context, t *domain.Tile) error {
	bom, err := r.loadBOM(ctx, t.ID)
	if err != nil {
		return err
	}
	t.BOM = bom

	deps, err := NewSQLiteDependencyRepo(r.db).ListPrerequisites(ctx, t.ID)
	if err != nil {
		return err
	}
	t.Dependencies = nil
	for _, d := range deps {
		t.Dependencies = append(t.Dependencies, d.DependsOnID)
	}
	return nil
}

func (r *SQLiteTileRepo) loadBOM(ctx context.Context, tileID string) ([]domain.BOMLine, error) {
	query := `SELECT id, type, name, quantity, unit, unit_cost, status, supplier, material_id
		FROM bom_lines WHERE tile_id = ? ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query, tileID)
	if err != nil {
		return nil, fmt.Errorf("listing BOM lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.BOMLine
	for rows.Next() {
		var l domain.BOMLine
		var typ, status string
		var unitCost sql.NullFloat64
		if err := rows.Scan(&l.ID, &typ, &l.Name, &l.Quantity, &l.Unit, &unitCost, &status, &l.Supplier, &l.MaterialID); err != nil {
			return nil, fmt.Errorf("scanning BOM line: %w", err)
		}
		l.Type = domain.BOMLineType(typ)
		l.Status = domain.BOMLineStatus(status)
		l.UnitCost = parseNullableFloat(unitCost)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating BOM lines: %w", err)
	}
	return lines, nil
}

func (r *SQLiteTileRepo) queryTiles(ctx context.Context, query string, args ...any) ([]*domain.Tile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tiles: %w", err)
	}
	defer rows.Close()

	var tiles []*domain.Tile
	for rows.Next() {
		t, err := r.scanTile(rows)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tiles: %w", err)
	}
	return tiles, nil
}

func (r *SQLiteTileRepo) scanTile(row rowScanner) (*domain.Tile, error) {
	var t domain.Tile
	var projectID, deadlineStr sql.NullString
	var statusStr, priorityStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &projectID, &t.Name, &statusStr, &t.LaborCost, &priorityStr,
		&t.Designer, &t.Technology, &deadlineStr, &t.Version,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tile: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tile: %w", err)
	}

	t.ProjectID = projectID.String
	t.Status = domain.TileStatus(statusStr)
	t.Priority = domain.Priority(priorityStr)
	t.Deadline = parseNullableTime(deadlineStr, dateLayout)
	if t.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &t, nil
}
